// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/api"
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/errmsg"
)

// statusDuration is how long a transient status message stays visible.
const statusDuration = 4 * time.Second

// request runs call with the model's request timeout and converts the
// outcome to a message.
func request[T any](timeout time.Duration, call func(context.Context) (T, error), done func(T, error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		v, err := call(ctx)
		return done(v, err)
	}
}

func (m Model) loadDashboard() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()

		stats, err := backend.LeadStats(ctx)
		if err != nil {
			return DashboardLoadedMsg{Err: err}
		}
		leads, err := backend.ListLeads(ctx, crm.LeadFilters{}, 1)
		if err != nil {
			return DashboardLoadedMsg{Err: err}
		}
		return DashboardLoadedMsg{Stats: stats, Leads: leads.Items}
	}
}

func (m Model) loadLeads(page int) tea.Cmd {
	filters := m.leadFilters
	return request(m.timeout,
		func(ctx context.Context) (*crm.Page[crm.Lead], error) {
			return m.backend.ListLeads(ctx, filters, page)
		},
		func(p *crm.Page[crm.Lead], err error) tea.Msg {
			return LeadsLoadedMsg{Filters: filters, Page: p, Err: err}
		})
}

func (m Model) createLead(lead api.NewLead) tea.Cmd {
	return request(m.timeout,
		func(ctx context.Context) (*crm.Lead, error) {
			return m.backend.CreateLead(ctx, lead)
		},
		func(l *crm.Lead, err error) tea.Msg {
			return LeadCreatedMsg{Lead: l, Err: err}
		})
}

func (m Model) loadProperties(page int) tea.Cmd {
	filters := m.propertyFilters
	return request(m.timeout,
		func(ctx context.Context) (*crm.Page[crm.Property], error) {
			return m.backend.ListProperties(ctx, filters, page)
		},
		func(p *crm.Page[crm.Property], err error) tea.Msg {
			return PropertiesLoadedMsg{Filters: filters, Page: p, Err: err}
		})
}

func (m Model) createProperty(p api.NewProperty) tea.Cmd {
	return request(m.timeout,
		func(ctx context.Context) (*crm.Property, error) {
			return m.backend.CreateProperty(ctx, p)
		},
		func(created *crm.Property, err error) tea.Msg {
			return PropertyCreatedMsg{Property: created, Err: err}
		})
}

func (m Model) loadConversations(page int) tea.Cmd {
	return request(m.timeout,
		func(ctx context.Context) (*crm.Page[crm.Conversation], error) {
			return m.backend.ListConversations(ctx, page)
		},
		func(p *crm.Page[crm.Conversation], err error) tea.Msg {
			return ConversationsLoadedMsg{Page: p, Err: err}
		})
}

func (m Model) loadReviews(status crm.ReviewStatus, page int) tea.Cmd {
	return request(m.timeout,
		func(ctx context.Context) (*crm.Page[crm.Review], error) {
			return m.backend.ListReviews(ctx, status, page)
		},
		func(p *crm.Page[crm.Review], err error) tea.Msg {
			return ReviewsLoadedMsg{Status: status, Page: p, Err: err}
		})
}

func (m Model) loadMessages(conversationID string) tea.Cmd {
	return request(m.timeout,
		func(ctx context.Context) ([]crm.Message, error) {
			return m.backend.ListMessages(ctx, conversationID)
		},
		func(msgs []crm.Message, err error) tea.Msg {
			return MessagesLoadedMsg{ConversationID: conversationID, Messages: msgs, Err: err}
		})
}

func (m Model) sendMessage(conversationID, content string) tea.Cmd {
	return request(m.timeout,
		func(ctx context.Context) (*crm.Message, error) {
			return m.backend.SendMessage(ctx, conversationID, content)
		},
		func(msg *crm.Message, err error) tea.Msg {
			return MessageSentMsg{ConversationID: conversationID, Message: msg, Err: err}
		})
}

// updateReview runs one review decision.
func (m Model) updateReview(id string, op errmsg.Op, call func(context.Context) (*crm.Review, error)) tea.Cmd {
	return request(m.timeout, call, func(r *crm.Review, err error) tea.Msg {
		return ReviewUpdatedMsg{ID: id, Op: op, Review: r, Err: err}
	})
}

func (m Model) approveReview(id string) tea.Cmd {
	return m.updateReview(id, errmsg.OpReviewApprove, func(ctx context.Context) (*crm.Review, error) {
		return m.backend.ApproveReview(ctx, id)
	})
}

func (m Model) editReview(id, response string) tea.Cmd {
	return m.updateReview(id, errmsg.OpReviewEdit, func(ctx context.Context) (*crm.Review, error) {
		return m.backend.EditReview(ctx, id, response, "")
	})
}

func (m Model) rejectReview(id, reason string) tea.Cmd {
	return m.updateReview(id, errmsg.OpReviewReject, func(ctx context.Context) (*crm.Review, error) {
		return m.backend.RejectReview(ctx, id, reason)
	})
}

// StatusTimeoutCmd returns a command that sends StatusTimeoutMsg after statusDuration.
func StatusTimeoutCmd(seq int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return StatusTimeoutMsg{Seq: seq}
	})
}
