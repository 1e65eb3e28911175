// Package form provides a popup that collects a record one field per step,
// used to add leads and properties.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const charLimit = 512

// Field is one step of a form.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Default     string // used when the answer is left empty
	Required    bool
	Numeric     bool
	Choices     []string          // the answer must be one of these; tab completes
	Skip        func(Values) bool // hides the field given the answers so far
}

// parse normalizes a raw answer.
func (f Field) parse(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		v = f.Default
	}
	if v == "" {
		if f.Required {
			return "", fmt.Errorf("%s is required", f.Label)
		}
		return "", nil
	}
	if f.Numeric {
		if _, err := strconv.Atoi(v); err != nil {
			return "", fmt.Errorf("%s must be a whole number", f.Label)
		}
	}
	if len(f.Choices) > 0 {
		for _, c := range f.Choices {
			if strings.EqualFold(c, v) {
				return c, nil
			}
		}
		return "", fmt.Errorf("%s must be one of %s", f.Label, strings.Join(f.Choices, ", "))
	}
	return v, nil
}

// Values holds answers keyed by Field.Key.
type Values map[string]string

// Int returns the answer for key as an integer, 0 when unset.
func (v Values) Int(key string) int {
	n, err := strconv.Atoi(v[key])
	if err != nil {
		return 0
	}
	return n
}

// Result is emitted when the form is submitted or cancelled.
type Result struct {
	Values   Values
	Context  any
	Canceled bool
}

// Model is a multi-step form popup. Enter accepts the current field, Esc
// goes back one step and cancels from the first one.
type Model struct {
	ui.Base
	title   string
	fields  []Field
	values  Values
	steps   *Machine[int]
	input   textinput.Model
	err     string
	context any
}

// New creates a form over fields, which must not be empty.
func New(title string, fields []Field, context any) *Model {
	m := &Model{
		title:   title,
		fields:  fields,
		values:  make(Values),
		context: context,
	}
	first := m.next(-1)
	m.steps = NewMachine(first)
	m.load(first)
	return m
}

// Field returns the field being edited.
func (m *Model) Field() Field {
	return m.fields[m.steps.Current()]
}

// Err returns the problem with the last answer, if any.
func (m *Model) Err() string {
	return m.err
}

// next returns the first field after i that is not skipped, or
// len(fields) when none is left.
func (m *Model) next(i int) int {
	for j := i + 1; j < len(m.fields); j++ {
		if !m.skipped(j) {
			return j
		}
	}
	return len(m.fields)
}

func (m *Model) skipped(i int) bool {
	skip := m.fields[i].Skip
	return skip != nil && skip(m.values)
}

// load puts field i in the input, prefilled with its earlier answer.
func (m *Model) load(i int) tea.Cmd {
	f := m.fields[i]
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	ti.Placeholder = f.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = f.Default
	}
	ti.ShowSuggestions = len(f.Choices) > 0
	ti.SetSuggestions(f.Choices)
	ti.SetValue(m.values[f.Key])
	ti.CursorEnd()
	ti.Width = inputWidth(m.Width())
	m.input = ti
	return m.input.Focus()
}

func inputWidth(width int) int {
	return max(min(width/2, 60), 10)
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = inputWidth(width)
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
			return m, m.back()
		case tea.KeyEnter:
			return m, m.accept()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) back() tea.Cmd {
	m.err = ""
	if m.steps.Back() {
		return m.load(m.steps.Current())
	}
	ctx := m.context
	return func() tea.Msg {
		return Result{Canceled: true, Context: ctx}
	}
}

func (m *Model) accept() tea.Cmd {
	i := m.steps.Current()
	f := m.fields[i]
	v, err := f.parse(m.input.Value())
	if err != nil {
		m.err = err.Error()
		return nil
	}
	m.err = ""
	m.values[f.Key] = v

	if next := m.next(i); next < len(m.fields) {
		m.steps.Advance(next)
		return m.load(next)
	}

	values := m.answers()
	ctx := m.context
	return func() tea.Msg {
		return Result{Values: values, Context: ctx}
	}
}

// answers returns the non-empty answers of the fields that are not skipped.
func (m *Model) answers() Values {
	out := make(Values, len(m.values))
	for i, f := range m.fields {
		if m.skipped(i) {
			continue
		}
		if v := m.values[f.Key]; v != "" {
			out[f.Key] = v
		}
	}
	return out
}

// remaining counts the fields from i on that will be asked.
func (m *Model) remaining(i int) int {
	n := 0
	for j := i; j < len(m.fields); j = m.next(j) {
		n++
	}
	return n
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	i := m.steps.Current()
	f := m.fields[i]
	done := m.steps.HistoryDepth()
	left := m.remaining(i)

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title))
	sb.WriteString("  ")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("Step %d of %d", done+1, done+left)))
	sb.WriteString("\n\n")

	for _, prev := range m.steps.history {
		pf := m.fields[prev]
		v := m.values[pf.Key]
		if v == "" {
			v = "-"
		}
		sb.WriteString(s.Subtle.Render(pf.Label+": ") + s.Base.Render(v) + "\n")
	}
	if done > 0 {
		sb.WriteString("\n")
	}

	label := f.Label
	if f.Required {
		label += " *"
	}
	sb.WriteString(s.Title.Render(label) + "\n")
	sb.WriteString(m.input.View())
	if m.err != "" {
		sb.WriteString("\n" + s.Error.Render(m.err))
	}

	hint := "Enter: next"
	if left == 1 {
		hint = "Enter: save"
	}
	if done == 0 {
		hint += ", Esc: cancel"
	} else {
		hint += ", Esc: back"
	}
	if len(f.Choices) > 0 {
		hint = "Tab: complete, " + hint
	}
	sb.WriteString("\n\n" + s.Subtle.Render(hint))
	return sb.String()
}
