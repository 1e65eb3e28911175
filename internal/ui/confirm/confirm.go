// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// maxWidth caps the wrapped message width.
const maxWidth = 60

// Result is emitted when the user answers.
type Result struct {
	Confirmed bool
	Context   any // User-provided context passed through
}

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, m.answer(true)
	case "esc", "n", "N":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return Result{Confirmed: confirmed, Context: ctx}
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	width := min(maxWidth, max(m.Width()-4, 10))
	lines := []string{s.Active.Render(m.title), ""}
	for _, para := range strings.Split(m.message, "\n") {
		for _, l := range render.Wrap(para, width) {
			lines = append(lines, s.Base.Render(l))
		}
	}
	lines = append(lines, "", s.Muted.Render("Enter/Y: confirm, Esc/N: cancel"))
	return strings.Join(lines, "\n")
}
