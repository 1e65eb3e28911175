// internal/app/handlers.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/app/handler"
	"github.com/llehouerou/rentflow/internal/app/navctl"
	"github.com/llehouerou/rentflow/internal/app/popupctl"
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/errmsg"
	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/ui/confirm"
	"github.com/llehouerou/rentflow/internal/ui/form"
	"github.com/llehouerou/rentflow/internal/ui/list"
	"github.com/llehouerou/rentflow/internal/ui/textinput"
)

// handleGlobalKeys handles keys that work in every view.
func (m *Model) handleGlobalKeys(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // other actions belong to the views
	case keymap.ActionQuit:
		m.Popups.Close()
		m.SaveNavigation()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp(m.helpContexts()))
	case keymap.ActionSearch:
		view := m.Navigation.ViewMode()
		if !view.SupportsSearch() {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.Popups.ShowTextInput(
			popupctl.InputSearch,
			"Search "+view.Title(),
			m.query(view),
			m.recentSearches(view),
			view,
		))
	case keymap.ActionRefresh:
		view := m.Navigation.ViewMode()
		if view == navctl.ViewDashboard {
			return handler.Handled(m.loadDashboard())
		}
		return handler.Handled(tea.Batch(m.loadDashboard(), m.loadView(view)))
	case keymap.ActionDemo:
		if m.script == nil {
			m.Popups.ShowError(errmsg.Format(errmsg.OpDemoLoad, demo.ErrNoScript))
			return handler.HandledNoCmd
		}
		return handler.Handled(m.Popups.ShowDemo(m.script))
	}
	return handler.NotHandled
}

// handleViewKeys switches between the dashboard views.
func (m *Model) handleViewKeys(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // only view switching
	case keymap.ActionViewDashboard:
		return handler.Handled(m.switchView(navctl.ViewDashboard))
	case keymap.ActionViewLeads:
		return handler.Handled(m.switchView(navctl.ViewLeads))
	case keymap.ActionViewProperties:
		return handler.Handled(m.switchView(navctl.ViewProperties))
	case keymap.ActionViewConversations:
		return handler.Handled(m.switchView(navctl.ViewConversations))
	case keymap.ActionViewReviews:
		return handler.Handled(m.switchView(navctl.ViewReviews))
	case keymap.ActionNextView:
		m.Navigation.NextView()
		return handler.Handled(m.viewChanged())
	case keymap.ActionPrevView:
		m.Navigation.PrevView()
		return handler.Handled(m.viewChanged())
	}
	return handler.NotHandled
}

// handleRecordKeys adds records to and filters the leads and properties
// listings.
func (m *Model) handleRecordKeys(action keymap.Action) handler.Result {
	switch m.Navigation.ViewMode() { //nolint:exhaustive // other views have no records to add
	case navctl.ViewLeads:
		switch action { //nolint:exhaustive // lead keys only
		case keymap.ActionAdd:
			return handler.Handled(m.Popups.ShowForm("Add new lead", leadFields(), navctl.ViewLeads))
		case keymap.ActionCycleStatus:
			m.leadFilters.Status = crm.NextLeadStatus(m.leadFilters.Status)
			return handler.Handled(m.leadFiltersChanged())
		case keymap.ActionClearFilters:
			if m.leadFilters == (crm.LeadFilters{}) {
				return handler.HandledNoCmd
			}
			m.leadFilters = crm.LeadFilters{}
			return handler.Handled(m.leadFiltersChanged())
		}
	case navctl.ViewProperties:
		switch action { //nolint:exhaustive // property keys only
		case keymap.ActionAdd:
			return handler.Handled(m.Popups.ShowForm("Add new property", propertyFields(), navctl.ViewProperties))
		case keymap.ActionCycleType:
			m.propertyFilters.Type = crm.NextPropertyType(m.propertyFilters.Type)
			return handler.Handled(m.propertyFiltersChanged())
		case keymap.ActionCycleBedrooms:
			m.propertyFilters.Bedrooms = crm.NextBedrooms(m.propertyFilters.Bedrooms)
			return handler.Handled(m.propertyFiltersChanged())
		case keymap.ActionClearFilters:
			if m.propertyFilters == (crm.PropertyFilters{}) {
				return handler.HandledNoCmd
			}
			m.propertyFilters = crm.PropertyFilters{}
			return handler.Handled(m.propertyFiltersChanged())
		}
	}
	return handler.NotHandled
}

// leadFiltersChanged refetches the first page of leads.
func (m *Model) leadFiltersChanged() tea.Cmd {
	m.leads.reset()
	return m.loadLeads(1)
}

// propertyFiltersChanged refetches the first page of properties.
func (m *Model) propertyFiltersChanged() tea.Cmd {
	m.properties.reset()
	return m.loadProperties(1)
}

// handleThreadKeys handles the message pane of the conversations view.
func (m *Model) handleThreadKeys(action keymap.Action) handler.Result {
	if m.Navigation.ViewMode() != navctl.ViewConversations {
		return handler.NotHandled
	}

	switch action { //nolint:exhaustive // list keys fall through to the table
	case keymap.ActionReply:
		conv, ok := m.replyTarget()
		if !ok {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.Popups.ShowTextInput(
			popupctl.InputReply,
			"Reply to "+conv.LeadName,
			"", nil, conv.ID,
		))
	case keymap.ActionBack:
		if !m.thread.open {
			return handler.NotHandled
		}
		m.closeThread()
		return handler.HandledNoCmd
	}

	if m.Navigation.Focus() != navctl.FocusPane {
		return handler.NotHandled
	}
	switch action { //nolint:exhaustive // the pane only scrolls
	case keymap.ActionMoveUp:
		m.thread.scroll = min(m.thread.scroll+1, m.threadMaxScroll())
		return handler.HandledNoCmd
	case keymap.ActionMoveDown:
		m.thread.scroll = max(m.thread.scroll-1, 0)
		return handler.HandledNoCmd
	case keymap.ActionJumpStart:
		m.thread.scroll = m.threadMaxScroll()
		return handler.HandledNoCmd
	case keymap.ActionJumpEnd:
		m.thread.scroll = 0
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// handleReviewKeys handles the review queue: status tabs and decisions on
// pending responses.
func (m *Model) handleReviewKeys(action keymap.Action) handler.Result {
	if m.Navigation.ViewMode() != navctl.ViewReviews {
		return handler.NotHandled
	}

	switch action { //nolint:exhaustive // list keys fall through to the table
	case keymap.ActionNextTab:
		m.Navigation.NextReviewTab()
		return handler.Handled(m.reviewTabChanged())
	case keymap.ActionPrevTab:
		m.Navigation.PrevReviewTab()
		return handler.Handled(m.reviewTabChanged())
	case keymap.ActionApprove, keymap.ActionEdit, keymap.ActionReject:
		r, ok := m.reviews.list.Selected()
		if !ok {
			return handler.HandledNoCmd
		}
		if m.Navigation.ReviewStatus() != crm.ReviewPending {
			return handler.Handled(m.setStatus("Only pending responses can be reviewed"))
		}
		return handler.Handled(m.reviewDecision(action, r))
	}
	return handler.NotHandled
}

func (m *Model) reviewDecision(action keymap.Action, r crm.Review) tea.Cmd {
	switch action { //nolint:exhaustive // called with review decisions only
	case keymap.ActionApprove:
		return m.Popups.ShowConfirm("Send this response to the tenant?", r.AIResponse, r.ID)
	case keymap.ActionEdit:
		return m.Popups.ShowTextInput(popupctl.InputEdit, "Edit response", r.AIResponse, nil, r.ID)
	case keymap.ActionReject:
		return m.Popups.ShowTextInput(popupctl.InputReject, "Reason for rejecting", "", nil, r.ID)
	}
	return nil
}

// handleListKeys moves the cursor of the active table and pages through
// the listing.
func (m *Model) handleListKeys(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // paging here, the rest goes to the list
	case keymap.ActionNextPage:
		return handler.Handled(m.changePage(1))
	case keymap.ActionPrevPage:
		return handler.Handled(m.changePage(-1))
	}

	var res list.Result
	switch m.Navigation.ViewMode() {
	case navctl.ViewLeads:
		res = m.leads.list.Update(action)
	case navctl.ViewProperties:
		res = m.properties.list.Update(action)
	case navctl.ViewConversations:
		res = m.conversations.list.Update(action)
		if res.Action == list.ActionEnter {
			return handler.Handled(m.openThread())
		}
	case navctl.ViewReviews:
		res = m.reviews.list.Update(action)
	case navctl.ViewDashboard:
		return handler.NotHandled
	}
	if res.Action == list.ActionNone {
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleTextInputResult applies a confirmed text input according to the
// mode it was opened in.
func (m Model) handleTextInputResult(msg textinput.Result) (tea.Model, tea.Cmd) {
	mode := m.Popups.InputMode()
	m.Popups.Hide(popupctl.TextInput)
	if msg.Canceled {
		return m, nil
	}

	text := strings.TrimSpace(msg.Text)
	switch mode {
	case popupctl.InputNone:
		return m, nil
	case popupctl.InputSearch:
		view, ok := msg.Context.(navctl.ViewMode)
		if !ok {
			return m, nil
		}
		m.setQuery(view, text)
		if text != "" {
			m.saveSearch(view, text)
		}
		return m, nil
	case popupctl.InputReply:
		id, _ := msg.Context.(string)
		if id == "" || text == "" {
			return m, nil
		}
		return m, m.sendMessage(id, text)
	case popupctl.InputEdit:
		id, _ := msg.Context.(string)
		if id == "" || text == "" {
			return m, nil
		}
		return m, m.editReview(id, text)
	case popupctl.InputReject:
		id, _ := msg.Context.(string)
		if id == "" {
			return m, nil
		}
		return m, m.rejectReview(id, text)
	}
	return m, nil
}

// handleConfirmResult approves the review once the broker confirmed it.
func (m Model) handleConfirmResult(msg confirm.Result) (tea.Model, tea.Cmd) {
	m.Popups.Hide(popupctl.Confirm)
	id, _ := msg.Context.(string)
	if !msg.Confirmed || id == "" {
		return m, nil
	}
	return m, m.approveReview(id)
}

// handleFormResult sends a completed add form to the backend.
func (m Model) handleFormResult(msg form.Result) (tea.Model, tea.Cmd) {
	m.Popups.Hide(popupctl.Form)
	if msg.Canceled {
		return m, nil
	}
	switch msg.Context {
	case navctl.ViewLeads:
		return m, m.createLead(newLead(msg.Values))
	case navctl.ViewProperties:
		return m, m.createProperty(newProperty(msg.Values))
	}
	return m, nil
}

// switchView shows view, loading it the first time it is visited.
func (m *Model) switchView(view navctl.ViewMode) tea.Cmd {
	if !m.Navigation.SetViewMode(view) {
		return nil
	}
	return m.viewChanged()
}

// viewChanged resets per-view UI state after a view switch.
func (m *Model) viewChanged() tea.Cmd {
	m.thread = thread{}
	m.applyFocus()
	m.resize()
	m.SaveNavigation()
	view := m.Navigation.ViewMode()
	if m.loaded(view) {
		return nil
	}
	return m.loadView(view)
}

// loadView fetches the current page of view.
func (m *Model) loadView(view navctl.ViewMode) tea.Cmd {
	switch view {
	case navctl.ViewDashboard:
		return m.loadDashboard()
	case navctl.ViewLeads:
		return m.loadLeads(m.leads.page)
	case navctl.ViewProperties:
		return m.loadProperties(m.properties.page)
	case navctl.ViewConversations:
		return m.loadConversations(m.conversations.page)
	case navctl.ViewReviews:
		return m.loadReviews(m.Navigation.ReviewStatus(), m.reviews.page)
	}
	return nil
}

func (m *Model) loaded(view navctl.ViewMode) bool {
	switch view {
	case navctl.ViewDashboard:
		return m.dashboard.loaded
	case navctl.ViewLeads:
		return m.leads.loaded
	case navctl.ViewProperties:
		return m.properties.loaded
	case navctl.ViewConversations:
		return m.conversations.loaded
	case navctl.ViewReviews:
		return m.reviews.loaded
	}
	return true
}

// changePage requests the page delta away from the current one, if it exists.
func (m *Model) changePage(delta int) tea.Cmd {
	switch m.Navigation.ViewMode() {
	case navctl.ViewLeads:
		if p, ok := pageTarget(m.leads, delta); ok {
			return m.loadLeads(p)
		}
	case navctl.ViewProperties:
		if p, ok := pageTarget(m.properties, delta); ok {
			return m.loadProperties(p)
		}
	case navctl.ViewConversations:
		if p, ok := pageTarget(m.conversations, delta); ok {
			return m.loadConversations(p)
		}
	case navctl.ViewReviews:
		if p, ok := pageTarget(m.reviews, delta); ok {
			return m.loadReviews(m.Navigation.ReviewStatus(), p)
		}
	case navctl.ViewDashboard:
	}
	return nil
}

func pageTarget[T any](t table[T], delta int) (int, bool) {
	if (delta > 0 && !t.hasNext()) || (delta < 0 && !t.hasPrev()) {
		return 0, false
	}
	return t.page + delta, true
}

// reviewTabChanged clears the queue and loads the first page of the new tab.
func (m *Model) reviewTabChanged() tea.Cmd {
	m.reviews.reset()
	m.SaveNavigation()
	return m.loadReviews(m.Navigation.ReviewStatus(), 1)
}

func (m *Model) query(view navctl.ViewMode) string {
	switch view {
	case navctl.ViewLeads:
		return m.leads.query
	case navctl.ViewProperties:
		return m.properties.query
	case navctl.ViewConversations:
		return m.conversations.query
	case navctl.ViewReviews:
		return m.reviews.query
	case navctl.ViewDashboard:
	}
	return ""
}

func (m *Model) setQuery(view navctl.ViewMode, q string) {
	switch view {
	case navctl.ViewLeads:
		m.leads.setQuery(q)
	case navctl.ViewProperties:
		m.properties.setQuery(q)
	case navctl.ViewConversations:
		m.conversations.setQuery(q)
	case navctl.ViewReviews:
		m.reviews.setQuery(q)
	case navctl.ViewDashboard:
	}
}

// openThread shows the messages of the selected conversation.
func (m *Model) openThread() tea.Cmd {
	conv, ok := m.conversations.list.Selected()
	if !ok {
		return nil
	}
	m.thread = thread{conversation: conv, open: true, loading: true}
	m.Navigation.SetFocus(navctl.FocusPane)
	m.applyFocus()
	m.resize()
	return m.loadMessages(conv.ID)
}

func (m *Model) closeThread() {
	m.thread = thread{}
	m.Navigation.SetFocus(navctl.FocusList)
	m.applyFocus()
	m.resize()
}

// replyTarget is the open conversation, else the selected one.
func (m *Model) replyTarget() (crm.Conversation, bool) {
	if m.thread.open {
		return m.thread.conversation, true
	}
	return m.conversations.list.Selected()
}

// helpContexts lists the binding groups relevant to the current view.
func (m *Model) helpContexts() []string {
	switch m.Navigation.ViewMode() {
	case navctl.ViewDashboard:
		return []string{"global"}
	case navctl.ViewReviews:
		return []string{"global", "list", "reviews"}
	case navctl.ViewConversations:
		return []string{"global", "list", "conversations"}
	case navctl.ViewLeads:
		return []string{"global", "list", "leads"}
	case navctl.ViewProperties:
		return []string{"global", "list", "properties"}
	}
	return []string{"global", "list"}
}
