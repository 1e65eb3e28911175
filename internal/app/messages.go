// Package app is the bubbletea program of the RentFlow dashboard.
package app

import (
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/errmsg"
)

// DashboardLoadedMsg carries the headline stats and the first page of
// leads used for the score distribution.
type DashboardLoadedMsg struct {
	Stats *crm.DashboardStats
	Leads []crm.Lead
	Err   error
}

// LeadsLoadedMsg carries one page of leads fetched with Filters.
type LeadsLoadedMsg struct {
	Filters crm.LeadFilters
	Page    *crm.Page[crm.Lead]
	Err     error
}

// PropertiesLoadedMsg carries one page of properties fetched with Filters.
type PropertiesLoadedMsg struct {
	Filters crm.PropertyFilters
	Page    *crm.Page[crm.Property]
	Err     error
}

// LeadCreatedMsg reports the result of adding a lead.
type LeadCreatedMsg struct {
	Lead *crm.Lead
	Err  error
}

// PropertyCreatedMsg reports the result of adding a property.
type PropertyCreatedMsg struct {
	Property *crm.Property
	Err      error
}

// ConversationsLoadedMsg carries one page of conversations.
type ConversationsLoadedMsg struct {
	Page *crm.Page[crm.Conversation]
	Err  error
}

// ReviewsLoadedMsg carries one page of the review queue for Status.
type ReviewsLoadedMsg struct {
	Status crm.ReviewStatus
	Page   *crm.Page[crm.Review]
	Err    error
}

// MessagesLoadedMsg carries the messages of a conversation.
type MessagesLoadedMsg struct {
	ConversationID string
	Messages       []crm.Message
	Err            error
}

// MessageSentMsg reports the result of a broker reply.
type MessageSentMsg struct {
	ConversationID string
	Message        *crm.Message
	Err            error
}

// ReviewUpdatedMsg reports the result of approving, editing or rejecting
// a review.
type ReviewUpdatedMsg struct {
	ID     string
	Op     errmsg.Op
	Review *crm.Review
	Err    error
}

// StatusTimeoutMsg clears the status line if it still shows message Seq.
type StatusTimeoutMsg struct {
	Seq int
}
