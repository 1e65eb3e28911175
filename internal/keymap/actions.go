// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionSearch  Action = "search"
	ActionRefresh Action = "refresh"
	ActionDemo    Action = "demo"

	// View switching
	ActionViewDashboard     Action = "view_dashboard"
	ActionViewLeads         Action = "view_leads"
	ActionViewProperties    Action = "view_properties"
	ActionViewConversations Action = "view_conversations"
	ActionViewReviews       Action = "view_reviews"
	ActionNextView          Action = "next_view"
	ActionPrevView          Action = "prev_view"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionSelect    Action = "select" // enter - open details

	// Record listings
	ActionAdd           Action = "add" // n - new lead or property
	ActionCycleStatus   Action = "cycle_status"
	ActionCycleType     Action = "cycle_type"
	ActionCycleBedrooms Action = "cycle_bedrooms"
	ActionClearFilters  Action = "clear_filters"

	// Review queue
	ActionApprove Action = "approve" // a
	ActionReject  Action = "reject"  // x
	ActionEdit    Action = "edit"    // e
	ActionNextTab Action = "next_tab"
	ActionPrevTab Action = "prev_tab"

	// Conversations
	ActionReply Action = "reply"
	ActionBack  Action = "back"

	// Demo walkthrough
	ActionDemoToggle Action = "demo_toggle" // space - play/pause
	ActionDemoReset  Action = "demo_reset"  // r
	ActionClose      Action = "close"       // esc
)
