// Package list provides a generic scrollable table component.
package list

import (
	"strings"

	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/cursor"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone  Action = iota
	ActionMoved        // Cursor moved
	ActionEnter        // Select pressed on a row
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // Which item index the action applies to (-1 if none)
}

// Model is a generic scrollable table.
// It handles navigation, returning actions for the parent to handle.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{
		cursor: cursor.New(margin),
	}
}

// SetItems replaces all items and clamps cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the currently selected item and true, or zero value and false if empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// ResetCursor moves back to the first row, e.g. after a page change.
func (m *Model[T]) ResetCursor() {
	m.cursor.Reset()
}

// Update applies a resolved key action.
func (m *Model[T]) Update(action keymap.Action) Result {
	if m.cursor.Apply(action, len(m.items), m.rows()) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if action == keymap.ActionSelect && len(m.items) > 0 {
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	}
	return Result{Index: -1}
}

// rows is the number of item rows that fit under the column header.
func (m Model[T]) rows() int {
	return m.ListHeight(ui.TableOverhead)
}

// Render draws the column header, a separator and the visible rows inside
// a panel. cells maps an item to its column values; empty renders instead
// of rows when there are no items.
func (m Model[T]) Render(cols []render.Column, cells func(T) []string, empty string) string {
	s := styles.T().S()
	inner := max(m.Width()-2, 0)

	lines := []string{
		s.Muted.Render(render.Truncate(render.Header(cols), inner)),
		s.Subtle.Render(render.Separator(inner)),
	}

	if len(m.items) == 0 {
		lines = append(lines, s.Muted.Render(render.Truncate(empty, inner)))
	} else {
		start, end := m.cursor.VisibleRange(len(m.items), m.rows())
		for i := start; i < end; i++ {
			row := render.TruncateAndPad(render.Columns(cols, cells(m.items[i])...), inner)
			if i == m.cursor.Pos() && m.IsFocused() {
				row = s.Cursor.Render(row)
			}
			lines = append(lines, row)
		}
	}

	for len(lines) < m.rows()+2 {
		lines = append(lines, "")
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}
