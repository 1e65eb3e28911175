package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/llehouerou/rentflow/internal/crm"
)

// NewLead is the payload for CreateLead.
type NewLead struct {
	Name                   string           `json:"name"`
	Phone                  string           `json:"phone"`
	Email                  string           `json:"email,omitempty"`
	LocationPreference     string           `json:"location_preference,omitempty"`
	PropertyTypePreference crm.PropertyType `json:"property_type_preference,omitempty"`
	BudgetMin              int              `json:"budget_min,omitempty"`
	BudgetMax              int              `json:"budget_max,omitempty"`
	BedroomsPreference     int              `json:"bedrooms_preference,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
}

func leadParams(f crm.LeadFilters) url.Values {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	if f.MinScore > 0 {
		params.Set("min_score", strconv.Itoa(f.MinScore))
	}
	if f.MaxScore > 0 {
		params.Set("max_score", strconv.Itoa(f.MaxScore))
	}
	if f.Location != "" {
		params.Set("location", f.Location)
	}
	if f.PropertyType != "" {
		params.Set("property_type", string(f.PropertyType))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

// ListLeads fetches one page of leads matching filters.
func (c *Client) ListLeads(ctx context.Context, filters crm.LeadFilters, page int) (*crm.Page[crm.Lead], error) {
	var out crm.Page[crm.Lead]
	if err := c.get(ctx, "/leads", c.pageParams(leadParams(filters), page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeadStats fetches the dashboard figures.
func (c *Client) LeadStats(ctx context.Context) (*crm.DashboardStats, error) {
	var out crm.DashboardStats
	if err := c.get(ctx, "/leads/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLead creates a lead.
func (c *Client) CreateLead(ctx context.Context, lead NewLead) (*crm.Lead, error) {
	var out crm.Lead
	if err := c.post(ctx, "/leads", lead, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

