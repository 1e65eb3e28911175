package textinput

import (
	"testing"

	"github.com/llehouerou/rentflow/internal/ui/testutil"
)

const testContext = "test-ctx"

func newTestInput(title, initialText string, suggestions []string, context any) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Start(title, initialText, suggestions, context, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func typeText(h *testutil.PopupHarness, text string) {
	for _, r := range text {
		if r == ' ' {
			h.SendKey("space")
			continue
		}
		h.SendKey(string(r))
	}
}

func getResult(t *testing.T, h *testutil.PopupHarness, key string) Result {
	t.Helper()
	cmd := h.SendKey(key)
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	result, ok := cmd().(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", cmd())
	}
	return result
}

func TestTextInput_TypeAndConfirm(t *testing.T) {
	_, h := newTestInput("Search", "", nil, testContext)
	typeText(h, "rahul k")

	result := getResult(t, h, "enter")
	if result.Text != "rahul k" {
		t.Errorf("Text = %q, want %q", result.Text, "rahul k")
	}
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestTextInput_InitialTextAndBackspace(t *testing.T) {
	m, h := newTestInput("Search", "koramangala", nil, nil)
	h.SendKey("backspace")
	h.SendKey("backspace")
	if m.Value() != "koramanga" {
		t.Errorf("Value = %q, want %q", m.Value(), "koramanga")
	}
}

func TestTextInput_Cancel(t *testing.T) {
	_, h := newTestInput("Reply", "typed", nil, testContext)
	result := getResult(t, h, "esc")
	if !result.Canceled {
		t.Error("expected Canceled=true")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestTextInput_AcceptSuggestion(t *testing.T) {
	m, h := newTestInput("Search", "", []string{"koramangala", "hsr layout"}, nil)
	typeText(h, "hs")
	h.SendKey("tab")
	if m.Value() != "hsr layout" {
		t.Errorf("Value = %q, want suggestion %q", m.Value(), "hsr layout")
	}
}

func TestTextInput_View(t *testing.T) {
	_, h := newTestInput("Search leads", "pet", []string{"pet friendly"}, nil)
	for _, want := range []string{"Search leads", "> pet", "Tab: complete", "Enter: confirm"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q:\n%s", want, h.View())
		}
	}

	_, h = newTestInput("Reply", "", nil, nil)
	if h.ViewContains("Tab: complete") {
		t.Error("completion hint shown without suggestions")
	}
}

func TestTextInput_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.Start("Title", "", nil, nil, 0, 0)
	h := testutil.NewPopupHarness(&m)
	if h.View() != "" {
		t.Errorf("View = %q, want empty when size is 0", h.View())
	}
}

func TestTextInput_Reset(t *testing.T) {
	m, h := newTestInput("Title", "text", nil, "context")
	m.Reset()
	if m.Value() != "" {
		t.Errorf("Value after reset = %q, want empty", m.Value())
	}
	if h.ViewContains("Title") {
		t.Error("title should be cleared by Reset")
	}
}
