package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/ui/popup"
)

// mockPopup is a simple popup implementation for testing the harness.
type mockPopup struct {
	content    string
	width      int
	height     int
	keyHistory []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "enter-pressed" }
		}
	}
	return m, nil
}

func (m *mockPopup) View() string {
	return "\x1b[1m" + m.content + "\x1b[0m"
}

func (m *mockPopup) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func TestNewPopupHarness(t *testing.T) {
	mock := &mockPopup{content: "test"}
	h := NewPopupHarness(mock)

	if h.Popup() != mock {
		t.Error("Popup() should return the underlying popup")
	}
	if len(h.Commands()) != 1 {
		t.Errorf("expected 1 init command, got %d", len(h.Commands()))
	}
}

func TestPopupHarness_SetSizeAndView(t *testing.T) {
	mock := &mockPopup{content: "walkthrough"}
	h := NewPopupHarness(mock)

	h.SetSize(80, 24)
	if mock.width != 80 || mock.height != 24 {
		t.Errorf("SetSize not propagated: got %dx%d, want 80x24", mock.width, mock.height)
	}
	if h.View() != "walkthrough" {
		t.Errorf("View() = %q, want ANSI stripped content", h.View())
	}
	if !h.ViewContains("walk") {
		t.Error("ViewContains(walk) = false")
	}
}

func TestPopupHarness_SendKey(t *testing.T) {
	mock := &mockPopup{}
	h := NewPopupHarness(mock)
	h.ClearCommands()

	for _, k := range []string{"r", "space", "enter", "esc", "up", "down", "tab"} {
		h.SendKey(k)
	}

	expected := []string{"r", " ", "enter", "esc", "up", "down", "tab"}
	if len(mock.keyHistory) != len(expected) {
		t.Fatalf("expected %d keys, got %v", len(expected), mock.keyHistory)
	}
	for i, exp := range expected {
		if mock.keyHistory[i] != exp {
			t.Errorf("key %d = %q, want %q", i, mock.keyHistory[i], exp)
		}
	}
}

func TestPopupHarness_ExecuteAndSend(t *testing.T) {
	mock := &mockPopup{}
	h := NewPopupHarness(mock)

	msg, _ := h.ExecuteAndSend(h.Commands()[0])
	if msg != "init" {
		t.Errorf("msg = %v, want init", msg)
	}

	cmd := h.SendKey("enter")
	if got := ExecuteCmd(cmd); got != "enter-pressed" {
		t.Errorf("enter cmd = %v, want enter-pressed", got)
	}
	if ExecuteCmd(nil) != nil {
		t.Error("ExecuteCmd(nil) should return nil")
	}
}
