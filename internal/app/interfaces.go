// internal/app/interfaces.go
package app

import (
	"context"

	"github.com/llehouerou/rentflow/internal/api"
	"github.com/llehouerou/rentflow/internal/crm"
)

// Backend is the slice of the RentFlow API the dashboard consumes.
type Backend interface {
	LeadStats(ctx context.Context) (*crm.DashboardStats, error)
	ListLeads(ctx context.Context, filters crm.LeadFilters, page int) (*crm.Page[crm.Lead], error)
	CreateLead(ctx context.Context, lead api.NewLead) (*crm.Lead, error)
	ListProperties(ctx context.Context, filters crm.PropertyFilters, page int) (*crm.Page[crm.Property], error)
	CreateProperty(ctx context.Context, p api.NewProperty) (*crm.Property, error)
	ListConversations(ctx context.Context, page int) (*crm.Page[crm.Conversation], error)
	ListMessages(ctx context.Context, conversationID string) ([]crm.Message, error)
	SendMessage(ctx context.Context, conversationID, content string) (*crm.Message, error)
	ListReviews(ctx context.Context, status crm.ReviewStatus, page int) (*crm.Page[crm.Review], error)
	ApproveReview(ctx context.Context, id string) (*crm.Review, error)
	EditReview(ctx context.Context, id, response, notes string) (*crm.Review, error)
	RejectReview(ctx context.Context, id, reason string) (*crm.Review, error)
}

// Verify the REST client implements Backend at compile time.
var _ Backend = (*api.Client)(nil)
