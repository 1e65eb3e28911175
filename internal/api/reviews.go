package api

import (
	"context"
	"net/url"

	"github.com/llehouerou/rentflow/internal/crm"
)

// ListReviews fetches one page of the review queue. An empty status lists
// every review.
func (c *Client) ListReviews(ctx context.Context, status crm.ReviewStatus, page int) (*crm.Page[crm.Review], error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", string(status))
	}
	var out crm.Page[crm.Review]
	if err := c.get(ctx, "/reviews", c.pageParams(params, page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveReview sends the AI response unchanged.
func (c *Client) ApproveReview(ctx context.Context, id string) (*crm.Review, error) {
	var out crm.Review
	if err := c.post(ctx, reviewPath(id)+"/approve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditReview replaces the AI response before it is sent.
func (c *Client) EditReview(ctx context.Context, id, response, notes string) (*crm.Review, error) {
	body := struct {
		EditedResponse string `json:"edited_response"`
		BrokerNotes    string `json:"broker_notes,omitempty"`
	}{response, notes}

	var out crm.Review
	if err := c.post(ctx, reviewPath(id)+"/edit", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectReview discards the AI response.
func (c *Client) RejectReview(ctx context.Context, id, reason string) (*crm.Review, error) {
	body := struct {
		Reason string `json:"reason"`
	}{reason}

	var out crm.Review
	if err := c.post(ctx, reviewPath(id)+"/reject", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func reviewPath(id string) string {
	return "/reviews/" + url.PathEscape(id)
}
