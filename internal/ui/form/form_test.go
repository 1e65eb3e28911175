package form

import (
	"strings"
	"testing"

	"github.com/llehouerou/rentflow/internal/ui/testutil"
)

const testContext = "leads"

func testFields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Required: true},
		{Key: "type", Label: "Type", Default: "flat", Choices: []string{"flat", "shop"}},
		{Key: "bedrooms", Label: "Bedrooms", Numeric: true, Default: "2",
			Skip: func(v Values) bool { return v["type"] == "shop" }},
		{Key: "notes", Label: "Notes"},
	}
}

func newTestForm() (*Model, *testutil.PopupHarness) {
	m := New("Add lead", testFields(), testContext)
	h := testutil.NewPopupHarness(m)
	h.SetSize(80, 24)
	return m, h
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

func answer(h *testutil.PopupHarness, text string) Result {
	typeText(h, text)
	cmd := h.SendKey("enter")
	if cmd == nil {
		return Result{}
	}
	r, _ := cmd().(Result)
	return r
}

func TestForm_CollectsAnswers(t *testing.T) {
	m, h := newTestForm()

	answer(h, "Asha Rao")
	answer(h, "")  // default type
	answer(h, "3") // bedrooms
	result := answer(h, "call after 6")

	if result.Canceled {
		t.Fatal("expected a submitted form")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
	want := Values{"name": "Asha Rao", "type": "flat", "bedrooms": "3", "notes": "call after 6"}
	for k, v := range want {
		if result.Values[k] != v {
			t.Errorf("Values[%q] = %q, want %q", k, result.Values[k], v)
		}
	}
	if result.Values.Int("bedrooms") != 3 {
		t.Errorf("Int(bedrooms) = %d, want 3", result.Values.Int("bedrooms"))
	}
	if m.Err() != "" {
		t.Errorf("Err() = %q, want none", m.Err())
	}
}

func TestForm_RequiredFieldBlocks(t *testing.T) {
	m, h := newTestForm()

	if cmd := h.SendKey("enter"); cmd != nil {
		t.Error("an empty required field should not advance")
	}
	if m.Field().Key != "name" {
		t.Errorf("Field() = %q, want name", m.Field().Key)
	}
	if !strings.Contains(h.View(), "Name is required") {
		t.Errorf("view should show the error, got:\n%s", h.View())
	}
}

func TestForm_ChoiceAndNumberChecked(t *testing.T) {
	m, h := newTestForm()
	answer(h, "Asha")

	answer(h, "castle")
	if m.Field().Key != "type" || !strings.Contains(m.Err(), "flat, shop") {
		t.Errorf("Field() = %q, Err() = %q", m.Field().Key, m.Err())
	}

	for range len("castle") {
		h.SendKey("backspace")
	}
	answer(h, "FLAT")
	answer(h, "two")
	if m.Field().Key != "bedrooms" || !strings.Contains(m.Err(), "whole number") {
		t.Errorf("Field() = %q, Err() = %q", m.Field().Key, m.Err())
	}
}

func TestForm_SkipsFieldsAndDropsTheirAnswers(t *testing.T) {
	m, h := newTestForm()
	answer(h, "Asha")
	answer(h, "flat")
	answer(h, "4")

	// Back to the type and switch to a shop: bedrooms no longer applies.
	h.SendKey("esc")
	h.SendKey("esc")
	if m.Field().Key != "type" {
		t.Fatalf("Field() = %q after two Esc, want type", m.Field().Key)
	}
	if m.input.Value() != "flat" {
		t.Errorf("input = %q, want the earlier answer", m.input.Value())
	}
	for range len("flat") {
		h.SendKey("backspace")
	}
	answer(h, "shop")
	if m.Field().Key != "notes" {
		t.Fatalf("Field() = %q, want notes", m.Field().Key)
	}

	result := answer(h, "")
	if _, ok := result.Values["bedrooms"]; ok {
		t.Errorf("skipped field kept its answer: %v", result.Values)
	}
	if _, ok := result.Values["notes"]; ok {
		t.Errorf("empty answer should be left out: %v", result.Values)
	}
	if result.Values["type"] != "shop" {
		t.Errorf("type = %q, want shop", result.Values["type"])
	}
}

func TestForm_EscOnFirstStepCancels(t *testing.T) {
	_, h := newTestForm()

	cmd := h.SendKey("esc")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	result, ok := cmd().(Result)
	if !ok || !result.Canceled {
		t.Errorf("expected a canceled Result, got %#v", cmd())
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestForm_View(t *testing.T) {
	_, h := newTestForm()
	view := h.View()
	for _, want := range []string{"Add lead", "Step 1 of 4", "Name *", "Esc: cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	answer(h, "Asha")
	typeText(h, "shop")
	view = h.View()
	for _, want := range []string{"Step 2 of 4", "Name: Asha", "Esc: back", "Tab: complete"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
