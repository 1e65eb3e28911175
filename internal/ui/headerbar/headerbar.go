// Package headerbar renders the view tabs across the top of the dashboard.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab is one view of the dashboard.
type Tab struct {
	Key   string // shortcut shown before the name
	Name  string
	View  string
	Badge int // count shown after the name, hidden when zero
}

const brand = "RentFlow"

// Render returns the header bar for width with the tab of currentView
// highlighted. The brand is drawn on the left when it fits.
func Render(tabs []Tab, currentView string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	s := t.S()

	keyActive := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	nameActive := lipgloss.NewStyle().Foreground(t.FgBase).Bold(true).Underline(true)
	separator := s.Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		var part string
		if tab.View == currentView {
			part = keyActive.Render(tab.Key) + " " + nameActive.Render(tab.Name)
		} else {
			part = s.Subtle.Render(tab.Key) + " " + s.Muted.Render(tab.Name)
		}
		if tab.Badge > 0 {
			part += " " + s.Warning.Render("("+badge(tab.Badge)+")")
		}
		parts = append(parts, part)
	}
	content := strings.Join(parts, separator)

	logo := styles.ApplyBoldGradient(brand, t.Primary, t.Secondary)
	contentWidth := lipgloss.Width(content)
	if contentWidth+lipgloss.Width(logo)+2 <= width {
		return logo + strings.Repeat(" ", width-contentWidth-lipgloss.Width(logo)) + content
	}

	if contentWidth < width {
		content = strings.Repeat(" ", (width-contentWidth)/2) + content
	}
	return content
}

func badge(n int) string {
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}
