// internal/app/view.go
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/app/navctl"
	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/headerbar"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < ui.MinWidth {
		return styles.T().S().Muted.Render("Terminal too narrow")
	}

	height := m.contentHeight()
	content := lipgloss.NewStyle().
		Height(height).
		MaxHeight(height).
		Render(m.renderContent())

	base := strings.Join([]string{
		headerbar.Render(m.tabs(), string(m.Navigation.ViewMode()), m.width),
		"",
		content,
		m.renderStatusLine(),
	}, "\n")

	return m.Popups.RenderOverlay(base)
}

func (m Model) tabs() []headerbar.Tab {
	tabs := make([]headerbar.Tab, len(navctl.Views))
	for i, v := range navctl.Views {
		tabs[i] = headerbar.Tab{
			Key:  strconv.Itoa(i + 1),
			Name: v.Title(),
			View: string(v),
		}
		if v == navctl.ViewReviews && m.dashboard.stats != nil {
			tabs[i].Badge = m.dashboard.stats.PendingReviews
		}
	}
	return tabs
}

func (m Model) renderContent() string {
	switch m.Navigation.ViewMode() {
	case navctl.ViewDashboard:
		return m.renderDashboard()
	case navctl.ViewLeads:
		return m.renderLeads()
	case navctl.ViewProperties:
		return m.renderProperties()
	case navctl.ViewConversations:
		return m.renderConversations()
	case navctl.ViewReviews:
		return m.renderReviews()
	}
	return ""
}

// renderStatusLine shows the transient status or key hints on the left and
// the page of the current table on the right.
func (m Model) renderStatusLine() string {
	s := styles.T().S()

	left := s.Muted.Render("? help · / search · D demo · q quit")
	if m.status != "" {
		left = s.Success.Render(m.status)
	}

	var right string
	switch m.Navigation.ViewMode() {
	case navctl.ViewLeads:
		right = pageInfo(m.leads, m.leadFilters.Label())
	case navctl.ViewProperties:
		right = pageInfo(m.properties, m.propertyFilters.Label())
	case navctl.ViewConversations:
		right = pageInfo(m.conversations, "")
	case navctl.ViewReviews:
		right = pageInfo(m.reviews, "")
	case navctl.ViewDashboard:
	}
	return render.Row(left, s.Muted.Render(right), m.width)
}

// pageInfo describes the page of t. filters names the server-side filters,
// shown even while the page loads.
func pageInfo[T any](t table[T], filters string) string {
	var parts []string
	if filters != "" {
		parts = append(parts, filters)
	}
	if t.loaded && t.err == nil {
		if t.query != "" {
			parts = append(parts, fmt.Sprintf("search %q", t.query), fmt.Sprintf("%d shown", t.list.Len()))
		}
		parts = append(parts, fmt.Sprintf("Page %d/%d", t.page, max(t.pages, 1)), fmt.Sprintf("%d total", t.total))
	}
	return strings.Join(parts, " · ")
}
