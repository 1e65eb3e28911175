// internal/app/table.go
package app

import (
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/list"
)

// table is one paged record listing with a client-side search over the
// loaded page.
type table[T any] struct {
	list   list.Model[T]
	all    []T
	query  string
	page   int
	pages  int
	total  int
	loaded bool
	err    error
	filter func([]T, string) []T
}

func newTable[T any](filter func([]T, string) []T) table[T] {
	return table[T]{
		list:   list.New[T](ui.ScrollMargin),
		page:   1,
		filter: filter,
	}
}

// setPage replaces the loaded page. The cursor goes back to the top when
// the page number changes.
func (t *table[T]) setPage(p *crm.Page[T]) {
	if p == nil {
		return
	}
	if p.Page != t.page {
		t.list.ResetCursor()
	}
	t.all = p.Items
	t.page = max(p.Page, 1)
	t.pages = p.TotalPages
	t.total = p.Total
	t.loaded = true
	t.err = nil
	t.refilter()
}

// reset empties the table before its first page is fetched again, e.g.
// when the server-side filters change.
func (t *table[T]) reset() {
	t.page = 1
	t.pages = 0
	t.total = 0
	t.loaded = false
	t.err = nil
	t.list.ResetCursor()
	t.setItems(nil)
}

func (t *table[T]) setError(err error) {
	t.loaded = true
	t.err = err
}

func (t *table[T]) setQuery(q string) {
	t.query = q
	t.list.ResetCursor()
	t.refilter()
}

// setItems replaces the page items, e.g. after a local removal.
func (t *table[T]) setItems(items []T) {
	t.all = items
	t.refilter()
}

func (t *table[T]) refilter() {
	t.list.SetItems(t.filter(t.all, t.query))
}

func (t table[T]) hasNext() bool {
	return t.page < t.pages
}

func (t table[T]) hasPrev() bool {
	return t.page > 1
}
