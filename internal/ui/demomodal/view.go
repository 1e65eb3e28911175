package demomodal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

const (
	defaultWidth = 72
	stepIndent   = "    "
)

// View renders the popup content.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	t := styles.T()
	s := t.S()

	lines := []string{
		styles.ApplyBoldGradient(render.Truncate(m.script.Title, width), t.Primary, t.Secondary),
	}
	if m.script.Subtitle != "" {
		lines = append(lines, s.Muted.Render(render.Truncate(m.script.Subtitle, width)))
	}
	lines = append(lines, "")
	lines = append(lines, m.renderProgress(width)...)
	lines = append(lines, "")
	lines = append(lines, m.renderSteps(width)...)
	lines = append(lines, "")
	if demo.ShowMetrics(m.snap) {
		lines = append(lines, m.renderSummary(width)...)
	} else {
		lines = append(lines, m.renderPreview(width)...)
	}
	footer := m.renderFooter(width)

	// Keep the controls visible on short terminals.
	if m.height > 2 && len(lines)+2 > m.height {
		lines = lines[:m.height-2]
	}
	lines = append(lines, "", footer)

	return strings.Join(lines, "\n")
}

func (m *Model) renderProgress(width int) []string {
	t := styles.T()
	s := t.S()

	var label string
	switch {
	case m.snap.Total == 0:
		label = "No steps"
	case m.snap.Complete:
		label = "Complete"
	default:
		label = fmt.Sprintf("Step %d of %d", m.snap.Index+1, m.snap.Total)
	}
	pct := fmt.Sprintf("%d%%", int(m.snap.Progress()*100))

	filled := int(m.snap.Progress() * float64(width))
	return []string{
		render.Row(s.Base.Render(label), s.Muted.Render(pct), width),
		styles.GradientBar(width, filled, t.Primary, t.Secondary),
	}
}

func (m *Model) renderSteps(width int) []string {
	s := styles.T().S()
	lines := make([]string, 0, len(m.script.Steps)+1)

	for i, step := range m.script.Steps {
		text := render.Truncate(step.Title, width-2)
		switch demo.StepState(i, m.snap) {
		case demo.StepDone:
			lines = append(lines, s.Success.Render("✓ ")+s.Base.Render(text))
		case demo.StepActive:
			lines = append(lines, s.Active.Render("▶ "+text))
			if step.Description != "" {
				for _, l := range render.Wrap(step.Description, width-len(stepIndent)) {
					lines = append(lines, stepIndent+s.Muted.Render(l))
				}
			}
		default:
			lines = append(lines, s.Subtle.Render("○ "+text))
		}
	}
	return lines
}

func (m *Model) renderPreview(width int) []string {
	s := styles.T().S()
	lines := []string{s.Title.Render("Live Preview")}

	for _, card := range demo.Preview(m.script, m.snap) {
		if card.Title != "" {
			lines = append(lines, s.Active.Render(render.Truncate(card.Title, width)))
		}
		for _, l := range card.Lines {
			for _, w := range render.Wrap(l, width-2) {
				lines = append(lines, "  "+s.Base.Render(w))
			}
		}
	}
	return lines
}

func (m *Model) renderSummary(width int) []string {
	s := styles.T().S()
	var lines []string
	if m.script.CompleteTitle != "" {
		lines = append(lines, s.Success.Bold(true).Render(render.Truncate(m.script.CompleteTitle, width)))
	}
	if m.script.CompleteNote != "" {
		lines = append(lines, s.Muted.Render(render.Truncate(m.script.CompleteNote, width)))
	}
	if len(m.script.Metrics) == 0 {
		return lines
	}
	lines = append(lines, "")

	cols := len(m.script.Metrics)
	cardWidth := max((width-(cols-1))/cols, 8)
	cards := make([]string, cols)
	for i, metric := range m.script.Metrics {
		body := []string{
			s.Active.Render(render.Truncate(metric.Value, cardWidth-4)),
			s.Base.Render(render.Truncate(metric.Label, cardWidth-4)),
		}
		if metric.Note != "" {
			body = append(body, s.Muted.Render(render.Truncate(metric.Note, cardWidth-4)))
		}
		cards[i] = styles.CardStyle(cardWidth).Render(strings.Join(body, "\n"))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(cards, " ")...)
	return append(lines, strings.Split(grid, "\n")...)
}

func (m *Model) renderFooter(width int) string {
	s := styles.T().S()
	control := s.Active.Render("[ " + demo.ControlLabel(m.snap) + " ]")
	hints := s.Subtle.Render(fmt.Sprintf("%s play/pause · %s reset · %s close",
		m.keys.Hint(keymap.ActionDemoToggle),
		m.keys.Hint(keymap.ActionDemoReset),
		m.keys.Hint(keymap.ActionClose),
	))
	return render.Row(control, hints, width)
}

func intersperse(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(items)-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
