// Package navctl provides navigation control types and utilities.
package navctl

import "slices"

// ViewMode represents the screen shown under the header bar.
type ViewMode string

const (
	// ViewDashboard shows headline stats and the lead score distribution.
	ViewDashboard ViewMode = "dashboard"
	// ViewLeads shows the lead table.
	ViewLeads ViewMode = "leads"
	// ViewProperties shows the property listings.
	ViewProperties ViewMode = "properties"
	// ViewConversations shows chat threads and their messages.
	ViewConversations ViewMode = "conversations"
	// ViewReviews shows the AI response review queue.
	ViewReviews ViewMode = "reviews"
)

// Views lists view modes in tab order.
var Views = []ViewMode{ViewDashboard, ViewLeads, ViewProperties, ViewConversations, ViewReviews}

// Title returns the tab label of the view.
func (v ViewMode) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewLeads:
		return "Leads"
	case ViewProperties:
		return "Properties"
	case ViewConversations:
		return "Conversations"
	case ViewReviews:
		return "Reviews"
	}
	return string(v)
}

// Valid reports whether v is a known view.
func (v ViewMode) Valid() bool {
	return slices.Contains(Views, v)
}

// SupportsSearch returns true if the view has a table to filter.
func (v ViewMode) SupportsSearch() bool {
	return v.Valid() && v != ViewDashboard
}

// FocusTarget represents which UI component has focus.
type FocusTarget int

const (
	// FocusList indicates the record table has focus.
	FocusList FocusTarget = iota
	// FocusPane indicates the message pane of the conversations view has focus.
	FocusPane
)
