// internal/app/view_dashboard.go
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/errmsg"
	"github.com/llehouerou/rentflow/internal/ui/layout"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

const recentLeads = 5

type statCard struct {
	label string
	value string
}

func (m Model) renderDashboard() string {
	s := styles.T().S()
	d := m.dashboard

	if !d.loaded {
		return s.Muted.Render("Loading dashboard...")
	}
	if d.err != nil {
		return s.Error.Render(errmsg.Format(errmsg.OpStatsLoad, d.err))
	}
	if d.stats == nil {
		return s.Muted.Render("No statistics yet")
	}

	sections := []string{
		m.renderStatCards(),
		"",
		m.renderDistribution(),
		"",
		m.renderQuickStats(),
	}
	if len(d.recent) > 0 {
		sections = append(sections, "", m.renderRecentLeads())
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderStatCards() string {
	s := styles.T().S()
	st := m.dashboard.stats
	cards := []statCard{
		{"Total Leads", strconv.Itoa(st.TotalLeads)},
		{"Hot Leads", strconv.Itoa(st.HotLeads)},
		{"Active Conversations", strconv.Itoa(st.ActiveConversations)},
		{"Pending Reviews", strconv.Itoa(st.PendingReviews)},
	}

	perRow := layout.CardsPerRow(m.width, len(cards))
	width := layout.CardWidth(m.width, perRow)

	var rows, row []string
	for i, c := range cards {
		inner := max(width-4, 1)
		body := s.Muted.Render(render.Truncate(c.label, inner)) + "\n" + s.Title.Render(c.value)
		row = append(row, styles.CardStyle(width).Render(body))
		if len(row) == perRow || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDistribution draws one bar per score tier.
func (m Model) renderDistribution() string {
	t := styles.T()
	s := t.S()
	d := m.dashboard.distribution

	tiers := []struct {
		label string
		count int
		style lipgloss.Style
		color lipgloss.Color
	}{
		{crm.TierHot.String(), d.Hot, s.Hot, t.Hot},
		{crm.TierWarm.String(), d.Warm, s.Warm, t.Warm},
		{crm.TierCold.String(), d.Cold, s.Cold, t.Cold},
	}

	const labelWidth = 6
	const countWidth = 12
	barWidth := max(m.width-labelWidth-countWidth-2, 10)
	total := d.Total()

	lines := []string{s.Title.Render("Lead Score Distribution")}
	for _, tier := range tiers {
		filled, pct := 0, 0
		if total > 0 {
			filled = tier.count * barWidth / total
			pct = tier.count * 100 / total
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			tier.style.Render(render.Pad(tier.label, labelWidth)),
			styles.GradientBar(barWidth, filled, tier.color, t.Secondary),
			s.Muted.Render(fmt.Sprintf("%3d (%3d%%)", tier.count, pct)),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderQuickStats() string {
	s := styles.T().S()
	st := m.dashboard.stats
	return strings.Join([]string{
		s.Title.Render("Quick Stats"),
		s.Muted.Render(render.Pad("Conversion rate", 18)) + s.Base.Render(fmt.Sprintf("%.1f%%", st.ConversionRate)),
		s.Muted.Render(render.Pad("Avg response", 18)) + s.Base.Render(fmt.Sprintf("%.1f min", st.AvgResponseTime)),
	}, "\n")
}

func (m Model) renderRecentLeads() string {
	s := styles.T().S()
	now := m.now()

	lines := []string{s.Title.Render("Recent Leads")}
	for _, l := range m.dashboard.recent[:min(len(m.dashboard.recent), recentLeads)] {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			render.TruncateAndPad(l.Name, 20),
			tierStyle(l.Tier()).Render(render.Pad(l.Tier().String(), 5)),
			render.PadLeft(strconv.Itoa(l.Score), 3),
			s.Muted.Render(crm.FormatRelative(l.CreatedAt, now)),
		))
	}
	return strings.Join(lines, "\n")
}

func tierStyle(tier crm.Tier) lipgloss.Style {
	s := styles.T().S()
	switch tier {
	case crm.TierHot:
		return s.Hot
	case crm.TierWarm:
		return s.Warm
	case crm.TierCold:
		return s.Cold
	}
	return s.Muted
}
