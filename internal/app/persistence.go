// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/rentflow/internal/app/navctl"
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/errmsg"
	"github.com/llehouerou/rentflow/internal/state"
)

// SaveNavigation persists the current view and review tab.
func (m Model) SaveNavigation() {
	if m.state == nil {
		return
	}
	m.state.SaveNavigation(state.NavigationState{
		View:         string(m.Navigation.ViewMode()),
		ReviewStatus: string(m.Navigation.ReviewStatus()),
	})
}

// restoreNavigation applies the saved view and review tab. Unknown values
// from an older schema are ignored.
func (m *Model) restoreNavigation() {
	if m.state == nil {
		return
	}
	nav, err := m.state.GetNavigation()
	if err != nil {
		m.logger.Warn().Err(err).Msg("restore navigation")
		return
	}
	if nav == nil {
		return
	}
	m.Navigation.SetViewMode(navctl.ViewMode(nav.View))
	m.Navigation.SetReviewStatus(crm.ReviewStatus(nav.ReviewStatus))
}

// recentSearches returns the search history of view, most recent first.
func (m Model) recentSearches(view navctl.ViewMode) []string {
	if m.state == nil {
		return nil
	}
	searches, err := m.state.RecentSearches(string(view))
	if err != nil {
		m.logger.Warn().Err(err).Str("view", string(view)).Msg("load search history")
		return nil
	}
	return searches
}

func (m Model) saveSearch(view navctl.ViewMode, query string) {
	if m.state == nil {
		return
	}
	if err := m.state.AddSearch(string(view), query); err != nil {
		m.logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpSearchSave, err))
	}
}
