package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/testutil"
)

var allContexts = []string{"global", "list", "reviews", "conversations"}

func newTestHelpPopup(contexts []string, height int) (*Model, *testutil.PopupHarness) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelpPopup([]string{"global"}, 24)
			cmd := h.SendKey(key)
			if cmd == nil {
				t.Fatal("expected command, got nil")
			}
			if _, ok := cmd().(popup.CloseMsg); !ok {
				t.Fatalf("expected popup.CloseMsg, got %T", cmd())
			}
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(allContexts, 24)
	if m.maxScroll() == 0 {
		t.Fatal("content should overflow a 24-row popup")
	}

	h.SendKey("j")
	h.SendKey("down")
	if m.scrollOffset != 2 {
		t.Errorf("scroll offset = %d, want 2", m.scrollOffset)
	}

	h.SendKey("k")
	if m.scrollOffset != 1 {
		t.Errorf("scroll offset = %d, want 1", m.scrollOffset)
	}

	for range m.maxScroll() + 5 {
		h.SendKey("j")
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scroll offset = %d, want clamped to %d", m.scrollOffset, m.maxScroll())
	}
	if !h.ViewContains("j/k scroll") {
		t.Error("footer should advertise scrolling")
	}
}

func TestHelpBindings_ScrollUpAtTopDoesNothing(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global"}, 24)
	h.SendKey("up")
	h.SendKey("k")
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d, want 0 when at top", m.scrollOffset)
	}
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newTestHelpPopup(allContexts, 100)

	for _, want := range []string{"Help", "Global", "Tables", "Review Queue", "Conversations", "?/esc close"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q", want)
		}
	}
	if line := testutil.FindLine(h.View(), "Approve response"); line == "" {
		t.Error("approve binding missing")
	}
	if h.ViewContains("Demo Walkthrough") {
		t.Error("demo bindings were not requested")
	}
}

func TestHelpBindings_SpaceKeyDisplayed(t *testing.T) {
	_, h := newTestHelpPopup([]string{"demo"}, 40)
	if line := testutil.FindLine(h.View(), "Start/pause/resume"); line == "" || !strings.Contains(line, "space") {
		t.Errorf("space binding line = %q, want it to name the space key", line)
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})
	h := testutil.NewPopupHarness(&m)
	if h.View() != "" {
		t.Errorf("view = %q, want empty when no size", h.View())
	}
}

func TestHelpBindings_SetContextsOrderAndReset(t *testing.T) {
	m, h := newTestHelpPopup([]string{"reviews", "global"}, 100)

	view := h.View()
	if testutil.LineIndex(view, "Global") > testutil.LineIndex(view, "Review Queue") {
		t.Error("Global should appear before Review Queue regardless of SetContexts order")
	}

	m.scrollOffset = 3
	m.SetContexts([]string{"global"})
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d after SetContexts, want 0", m.scrollOffset)
	}
}
