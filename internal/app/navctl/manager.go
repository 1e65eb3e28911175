// internal/app/navctl/manager.go
package navctl

import (
	"slices"

	"github.com/llehouerou/rentflow/internal/crm"
)

// Manager tracks the current view, focus and review queue tab.
type Manager struct {
	viewMode  ViewMode
	focus     FocusTarget
	reviewTab int // index into crm.ReviewStatuses
}

// New creates a new Manager showing the dashboard.
func New() *Manager {
	return &Manager{viewMode: ViewDashboard}
}

// --- View Mode ---

// ViewMode returns the current view mode.
func (n *Manager) ViewMode() ViewMode {
	return n.viewMode
}

// SetViewMode changes the view mode. Unknown modes are ignored.
// Returns true if the view changed.
func (n *Manager) SetViewMode(mode ViewMode) bool {
	if !mode.Valid() || mode == n.viewMode {
		return false
	}
	n.viewMode = mode
	n.focus = FocusList
	return true
}

// NextView cycles to the following tab.
func (n *Manager) NextView() {
	n.SetViewMode(Views[(n.viewIndex()+1)%len(Views)])
}

// PrevView cycles to the preceding tab.
func (n *Manager) PrevView() {
	n.SetViewMode(Views[(n.viewIndex()+len(Views)-1)%len(Views)])
}

func (n *Manager) viewIndex() int {
	return max(slices.Index(Views, n.viewMode), 0)
}

// --- Focus ---

// Focus returns the current focus target.
func (n *Manager) Focus() FocusTarget {
	return n.focus
}

// SetFocus changes focus. The message pane only exists in the
// conversations view.
func (n *Manager) SetFocus(target FocusTarget) {
	if target == FocusPane && n.viewMode != ViewConversations {
		return
	}
	n.focus = target
}

// --- Review Tabs ---

// ReviewStatus returns the status the review queue is filtered by.
func (n *Manager) ReviewStatus() crm.ReviewStatus {
	return crm.ReviewStatuses[n.reviewTab]
}

// SetReviewStatus selects a review tab. Unknown statuses are ignored.
func (n *Manager) SetReviewStatus(status crm.ReviewStatus) {
	if i := slices.Index(crm.ReviewStatuses, status); i >= 0 {
		n.reviewTab = i
	}
}

// NextReviewTab moves to the next status tab, wrapping around.
func (n *Manager) NextReviewTab() {
	n.reviewTab = (n.reviewTab + 1) % len(crm.ReviewStatuses)
}

// PrevReviewTab moves to the previous status tab, wrapping around.
func (n *Manager) PrevReviewTab() {
	n.reviewTab = (n.reviewTab + len(crm.ReviewStatuses) - 1) % len(crm.ReviewStatuses)
}
