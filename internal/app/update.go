// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/app/handler"
	"github.com/llehouerou/rentflow/internal/app/popupctl"
	"github.com/llehouerou/rentflow/internal/ui"
	"github.com/llehouerou/rentflow/internal/ui/confirm"
	"github.com/llehouerou/rentflow/internal/ui/demomodal"
	"github.com/llehouerou/rentflow/internal/ui/form"
	"github.com/llehouerou/rentflow/internal/ui/layout"
	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/textinput"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case popup.CloseMsg:
		m.Popups.HideActive()
		return m, nil
	case textinput.Result:
		return m.handleTextInputResult(msg)
	case confirm.Result:
		return m.handleConfirmResult(msg)
	case form.Result:
		return m.handleFormResult(msg)
	case demomodal.SnapshotMsg, demomodal.ClosedMsg:
		return m, m.Popups.Update(popupctl.Demo, msg)
	case StatusTimeoutMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case DashboardLoadedMsg:
		return m.handleDashboardLoaded(msg)
	case LeadsLoadedMsg:
		return m.handleLeadsLoaded(msg)
	case PropertiesLoadedMsg:
		return m.handlePropertiesLoaded(msg)
	case LeadCreatedMsg:
		return m.handleLeadCreated(msg)
	case PropertyCreatedMsg:
		return m.handlePropertyCreated(msg)
	case ConversationsLoadedMsg:
		return m.handleConversationsLoaded(msg)
	case ReviewsLoadedMsg:
		return m.handleReviewsLoaded(msg)
	case MessagesLoadedMsg:
		return m.handleMessagesLoaded(msg)
	case MessageSentMsg:
		return m.handleMessageSent(msg)
	case ReviewUpdatedMsg:
		return m.handleReviewUpdated(msg)
	}

	// Cursor blink and other input internals.
	return m, tea.Batch(
		m.Popups.Update(popupctl.TextInput, msg),
		m.Popups.Update(popupctl.Form, msg),
	)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	return m, nil
}

func (m Model) contentHeight() int {
	return layout.ContentHeight(m.height, layout.ContentOpts{
		HeaderHeight: ui.HeaderHeight,
		StatusHeight: ui.StatusHeight,
	})
}

// resize lays out every table for the current window.
func (m *Model) resize() {
	content := m.contentHeight()
	narrow := layout.IsNarrowMode(m.width)

	m.leads.list.SetSize(m.width, content)
	m.properties.list.SetSize(m.width, content)
	m.conversations.list.SetSize(
		layout.ListWidth(m.width, narrow, m.thread.open),
		layout.ListHeight(content, narrow, m.thread.open),
	)

	// The review queue keeps a line for its status tabs and always shows
	// the detail pane.
	reviews := max(content-1, 0)
	m.reviews.list.SetSize(
		layout.ListWidth(m.width, narrow, true),
		layout.ListHeight(reviews, narrow, true),
	)

	m.Popups.SetSize(m.width, m.height)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	mp := &m
	_, cmd := handler.Chain(m.keys.Resolve(msg.String()),
		mp.handleGlobalKeys,
		mp.handleViewKeys,
		mp.handleRecordKeys,
		mp.handleThreadKeys,
		mp.handleReviewKeys,
		mp.handleListKeys,
	)
	return m, cmd
}
