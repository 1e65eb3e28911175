// Package textinput provides a single-line input popup used for searches
// and short prompts such as replies and rejection reasons.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const charLimit = 256

// Result is emitted when the input is confirmed or cancelled.
type Result struct {
	Text     string
	Context  any  // User-provided context passed through
	Canceled bool // True if user pressed Escape
}

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	context any // passed through to Result
}

// New creates a new text input model.
func New() Model {
	return Model{input: newInput()}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	ti.ShowSuggestions = true
	return ti
}

// Start initializes the input with a title, optional initial text and
// completion suggestions (tab accepts one).
func (m *Model) Start(title, initialText string, suggestions []string, context any, width, height int) tea.Cmd {
	m.title = title
	m.context = context
	m.SetSize(width, height)

	m.input = newInput()
	m.input.SetSuggestions(suggestions)
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Width = max(min(width/2, 60), 10)
	return m.input.Focus()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.input = newInput()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // other keys go to the input
		case tea.KeyEsc:
			ctx := m.context
			return m, func() tea.Msg {
				return Result{Canceled: true, Context: ctx}
			}
		case tea.KeyEnter:
			text := m.input.Value()
			ctx := m.context
			return m, func() tea.Msg {
				return Result{Text: text, Context: ctx}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title)
	hint := "Enter: confirm, Esc: cancel"
	if len(m.input.AvailableSuggestions()) > 0 {
		hint = "Tab: complete, " + hint
	}

	return title + "\n\n" + m.input.View() + "\n\n" + s.Subtle.Render(hint)
}
