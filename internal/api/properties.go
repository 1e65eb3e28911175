package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/llehouerou/rentflow/internal/crm"
)

// NewProperty is the payload for CreateProperty.
type NewProperty struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Type        crm.PropertyType `json:"property_type"`
	Location    string           `json:"location"`
	Address     string           `json:"address,omitempty"`
	Rent        int              `json:"rent_amount"`
	Deposit     int              `json:"deposit_amount,omitempty"`
	Bedrooms    int              `json:"bedrooms,omitempty"`
	Bathrooms   int              `json:"bathrooms,omitempty"`
	AreaSqft    int              `json:"area_sqft,omitempty"`
	Amenities   []string         `json:"amenities,omitempty"`

	Availability crm.Availability `json:"availability_status,omitempty"`
}

func propertyParams(f crm.PropertyFilters) url.Values {
	params := url.Values{}
	if f.Type != "" {
		params.Set("property_type", string(f.Type))
	}
	if f.Location != "" {
		params.Set("location", f.Location)
	}
	if f.MinRent > 0 {
		params.Set("min_rent", strconv.Itoa(f.MinRent))
	}
	if f.MaxRent > 0 {
		params.Set("max_rent", strconv.Itoa(f.MaxRent))
	}
	if f.Bedrooms > 0 {
		params.Set("bedrooms", strconv.Itoa(f.Bedrooms))
	}
	if f.Availability != "" {
		params.Set("availability_status", string(f.Availability))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

// ListProperties fetches one page of properties matching filters.
func (c *Client) ListProperties(ctx context.Context, filters crm.PropertyFilters, page int) (*crm.Page[crm.Property], error) {
	var out crm.Page[crm.Property]
	if err := c.get(ctx, "/properties", c.pageParams(propertyParams(filters), page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProperty creates a listing.
func (c *Client) CreateProperty(ctx context.Context, p NewProperty) (*crm.Property, error) {
	var out crm.Property
	if err := c.post(ctx, "/properties", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

