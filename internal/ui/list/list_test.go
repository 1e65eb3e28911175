package list

import (
	"strconv"
	"testing"

	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/testutil"
)

type row struct {
	name  string
	score int
}

var cols = []render.Column{
	{Title: "Name", Width: 10},
	{Title: "Score", Width: 5, Right: true},
}

func cells(r row) []string {
	return []string{r.name, strconv.Itoa(r.score)}
}

func newList(n, height int) Model[row] {
	m := New[row](1)
	items := make([]row, n)
	for i := range items {
		items[i] = row{name: "lead-" + strconv.Itoa(i), score: i * 10}
	}
	m.SetItems(items)
	m.SetSize(40, height)
	m.SetFocused(true)
	return m
}

func TestUpdate_Navigation(t *testing.T) {
	m := newList(5, 10)

	res := m.Update(keymap.ActionMoveDown)
	if res.Action != ActionMoved || res.Index != 1 {
		t.Errorf("MoveDown = %+v, want moved to 1", res)
	}

	m.Update(keymap.ActionJumpEnd)
	if got, _ := m.Selected(); got.name != "lead-4" {
		t.Errorf("Selected after JumpEnd = %q, want lead-4", got.name)
	}

	res = m.Update(keymap.ActionSelect)
	if res.Action != ActionEnter || res.Index != 4 {
		t.Errorf("Select = %+v, want enter on 4", res)
	}

	res = m.Update(keymap.ActionApprove)
	if res.Action != ActionNone || res.Index != -1 {
		t.Errorf("unrelated action = %+v, want none", res)
	}
}

func TestUpdate_SelectOnEmpty(t *testing.T) {
	m := newList(0, 10)
	if res := m.Update(keymap.ActionSelect); res.Action != ActionNone {
		t.Errorf("Select on empty = %+v, want none", res)
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected() on empty list should report false")
	}
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newList(5, 10)
	m.Update(keymap.ActionJumpEnd)

	m.SetItems(m.Items()[:2])
	if m.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", m.SelectedIndex())
	}

	m.ResetCursor()
	if m.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex after reset = %d, want 0", m.SelectedIndex())
	}
}

func TestRender(t *testing.T) {
	// Height 7 leaves three rows under the header.
	m := newList(6, 7)
	out := testutil.StripANSI(m.Render(cols, cells, "No leads"))

	if testutil.FindLine(out, "Name") == "" {
		t.Error("header missing")
	}
	for _, want := range []string{"lead-0", "lead-2"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("row %q missing", want)
		}
	}
	if testutil.ContainsLine(out, "lead-3") {
		t.Error("row lead-3 should be scrolled out of view")
	}
	if got := len(testutil.SplitLines(out)); got != 7 {
		t.Errorf("rendered %d lines, want 7", got)
	}

	m.Update(keymap.ActionJumpEnd)
	out = testutil.StripANSI(m.Render(cols, cells, "No leads"))
	if !testutil.ContainsLine(out, "lead-5") || testutil.ContainsLine(out, "lead-0") {
		t.Error("JumpEnd should scroll the last rows into view")
	}
}

func TestRender_Empty(t *testing.T) {
	m := newList(0, 7)
	out := testutil.StripANSI(m.Render(cols, cells, "No leads"))
	if !testutil.ContainsLine(out, "No leads") {
		t.Errorf("empty placeholder missing:\n%s", out)
	}
}
