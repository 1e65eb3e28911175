// Package keymap defines key bindings for the application.
package keymap

// Binding maps keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "list", "leads", "properties", "reviews", "conversations", "demo"
}

// Bindings contains all key bindings. Demo bindings only apply while the
// walkthrough is open.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionRefresh, []string{"R", "ctrl+r"}, "Reload current view", "global"},
	{ActionDemo, []string{"D"}, "Open demo walkthrough", "global"},
	{ActionViewDashboard, []string{"1", "f1"}, "Dashboard", "global"},
	{ActionViewLeads, []string{"2", "f2"}, "Leads", "global"},
	{ActionViewProperties, []string{"3", "f3"}, "Properties", "global"},
	{ActionViewConversations, []string{"4", "f4"}, "Conversations", "global"},
	{ActionViewReviews, []string{"5", "f5"}, "Reviews", "global"},
	{ActionNextView, []string{"tab"}, "Next view", "global"},
	{ActionPrevView, []string{"shift+tab"}, "Previous view", "global"},

	// Lists
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "list"},
	{ActionNextPage, []string{"]", "pgdown"}, "Next page", "list"},
	{ActionPrevPage, []string{"[", "pgup"}, "Previous page", "list"},
	{ActionSelect, []string{"enter"}, "Open conversation", "list"},

	// Leads
	{ActionAdd, []string{"n"}, "Add lead", "leads"},
	{ActionCycleStatus, []string{"s"}, "Filter by status", "leads"},
	{ActionClearFilters, []string{"c"}, "Clear filters", "leads"},

	// Properties
	{ActionAdd, []string{"n"}, "Add property", "properties"},
	{ActionCycleType, []string{"t"}, "Filter by type", "properties"},
	{ActionCycleBedrooms, []string{"b"}, "Filter by bedrooms", "properties"},
	{ActionClearFilters, []string{"c"}, "Clear filters", "properties"},

	// Review queue
	{ActionApprove, []string{"a"}, "Approve response", "reviews"},
	{ActionEdit, []string{"e"}, "Edit and approve response", "reviews"},
	{ActionReject, []string{"x"}, "Reject response", "reviews"},
	{ActionNextTab, []string{"l", "right"}, "Next status tab", "reviews"},
	{ActionPrevTab, []string{"h", "left"}, "Previous status tab", "reviews"},

	// Conversations
	{ActionReply, []string{"r"}, "Reply to conversation", "conversations"},
	{ActionBack, []string{"esc"}, "Close messages", "conversations"},

	// Demo walkthrough
	{ActionDemoToggle, []string{" "}, "Start/pause/resume", "demo"},
	{ActionDemoReset, []string{"r"}, "Reset", "demo"},
	{ActionClose, []string{"esc", "q"}, "Close", "demo"},
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"global", "list", "leads", "properties", "reviews", "conversations", "demo"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ExceptContext returns all bindings outside context.
func ExceptContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context != context {
			result = append(result, kb)
		}
	}
	return result
}
