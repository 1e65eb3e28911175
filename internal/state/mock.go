// internal/state/mock.go
package state

import (
	"database/sql"
	"slices"
	"strings"
)

// Mock is a test double for Manager.
type Mock struct {
	navState *NavigationState
	token    string
	searches map[string][]string
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{searches: make(map[string][]string)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) Token() (string, error) { return m.token, nil }

func (m *Mock) SaveToken(token string) error {
	m.token = token
	return nil
}

func (m *Mock) ClearToken() error {
	m.token = ""
	return nil
}

func (m *Mock) RecentSearches(view string) ([]string, error) {
	return slices.Clone(m.searches[view]), nil
}

func (m *Mock) AddSearch(view, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	list := slices.DeleteFunc(m.searches[view], func(q string) bool { return q == query })
	list = append([]string{query}, list...)
	if len(list) > MaxSearchHistory {
		list = list[:MaxSearchHistory]
	}
	m.searches[view] = list
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
