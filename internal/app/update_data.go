// internal/app/update_data.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/errmsg"
)

func (m Model) handleDashboardLoaded(msg DashboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.dashboard.loaded = true
	m.dashboard.err = msg.Err
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg(string(errmsg.OpStatsLoad))
		return m, nil
	}
	m.dashboard.stats = msg.Stats
	m.dashboard.distribution = crm.Distribution(msg.Leads)
	m.dashboard.recent = msg.Leads
	return m, nil
}

func (m Model) handleLeadsLoaded(msg LeadsLoadedMsg) (tea.Model, tea.Cmd) {
	// Fetched before the filters changed.
	if msg.Filters != m.leadFilters {
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg(string(errmsg.OpLeadsLoad))
		m.leads.setError(msg.Err)
		return m, nil
	}
	m.leads.setPage(msg.Page)
	return m, nil
}

func (m Model) handlePropertiesLoaded(msg PropertiesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Filters != m.propertyFilters {
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg(string(errmsg.OpPropertiesLoad))
		m.properties.setError(msg.Err)
		return m, nil
	}
	m.properties.setPage(msg.Page)
	return m, nil
}

// handleLeadCreated puts the new lead at the top of the loaded page when
// it passes the active filters.
func (m Model) handleLeadCreated(msg LeadCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg(string(errmsg.OpLeadCreate))
		m.Popups.ShowError(errmsg.Format(errmsg.OpLeadCreate, msg.Err))
		return m, nil
	}
	if msg.Lead == nil {
		return m, nil
	}
	lead := *msg.Lead
	if m.leads.loaded && m.leads.err == nil && m.leadFilters.Matches(lead) {
		m.leads.setItems(append([]crm.Lead{lead}, m.leads.all...))
		m.leads.total++
	}
	if m.dashboard.stats != nil {
		stats := *m.dashboard.stats
		stats.TotalLeads++
		m.dashboard.stats = &stats
	}
	m.logger.Info().Str("lead", lead.ID).Msg("lead added")
	return m, m.setStatus("Lead added: " + lead.Name)
}

// handlePropertyCreated puts the new listing at the top of the loaded page
// when it passes the active filters.
func (m Model) handlePropertyCreated(msg PropertyCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg(string(errmsg.OpPropertyCreate))
		m.Popups.ShowError(errmsg.Format(errmsg.OpPropertyCreate, msg.Err))
		return m, nil
	}
	if msg.Property == nil {
		return m, nil
	}
	p := *msg.Property
	if m.properties.loaded && m.properties.err == nil && m.propertyFilters.Matches(p) {
		m.properties.setItems(append([]crm.Property{p}, m.properties.all...))
		m.properties.total++
	}
	m.logger.Info().Str("property", p.ID).Msg("property added")
	return m, m.setStatus("Property added: " + p.Title)
}

func (m Model) handleConversationsLoaded(msg ConversationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg(string(errmsg.OpConversationsLoad))
		m.conversations.setError(msg.Err)
		return m, nil
	}
	m.conversations.setPage(msg.Page)
	return m, nil
}

func (m Model) handleReviewsLoaded(msg ReviewsLoadedMsg) (tea.Model, tea.Cmd) {
	// A page for a tab the user already left.
	if msg.Status != m.Navigation.ReviewStatus() {
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Str("status", string(msg.Status)).Msg(string(errmsg.OpReviewsLoad))
		m.reviews.setError(msg.Err)
		return m, nil
	}
	m.reviews.setPage(msg.Page)
	return m, nil
}

func (m Model) handleMessagesLoaded(msg MessagesLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.thread.open || m.thread.conversation.ID != msg.ConversationID {
		return m, nil
	}
	m.thread.loading = false
	m.thread.err = msg.Err
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Str("conversation", msg.ConversationID).Msg(string(errmsg.OpMessagesLoad))
		return m, nil
	}
	m.thread.messages = msg.Messages
	m.thread.scroll = 0
	return m, nil
}

func (m Model) handleMessageSent(msg MessageSentMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Str("conversation", msg.ConversationID).Msg(string(errmsg.OpMessageSend))
		m.Popups.ShowError(errmsg.Format(errmsg.OpMessageSend, msg.Err))
		return m, nil
	}
	if m.thread.open && m.thread.conversation.ID == msg.ConversationID && msg.Message != nil {
		m.thread.messages = append(m.thread.messages, *msg.Message)
		m.thread.scroll = 0
	}
	return m, m.setStatus("Reply sent")
}

func (m Model) handleReviewUpdated(msg ReviewUpdatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Str("review", msg.ID).Msg(string(msg.Op))
		m.Popups.ShowError(errmsg.Format(msg.Op, msg.Err))
		return m, nil
	}

	// The review left the pending queue.
	before := len(m.reviews.all)
	m.reviews.setItems(crm.RemoveReview(m.reviews.all, msg.ID))
	if removed := before - len(m.reviews.all); removed > 0 {
		m.reviews.total = max(m.reviews.total-removed, 0)
		if m.dashboard.stats != nil {
			stats := *m.dashboard.stats
			stats.PendingReviews = max(stats.PendingReviews-removed, 0)
			m.dashboard.stats = &stats
		}
	}

	m.logger.Info().Str("review", msg.ID).Str("op", string(msg.Op)).Msg("review updated")
	return m, m.setStatus(reviewStatusText(msg.Op))
}

func reviewStatusText(op errmsg.Op) string {
	switch op {
	case errmsg.OpReviewApprove:
		return "Response approved"
	case errmsg.OpReviewEdit:
		return "Response edited and approved"
	case errmsg.OpReviewReject:
		return "Response rejected"
	}
	return "Review updated"
}
