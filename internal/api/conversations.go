package api

import (
	"context"
	"net/url"

	"github.com/llehouerou/rentflow/internal/crm"
)

// ListConversations fetches one page of conversations.
func (c *Client) ListConversations(ctx context.Context, page int) (*crm.Page[crm.Conversation], error) {
	var out crm.Page[crm.Conversation]
	if err := c.get(ctx, "/conversations", c.pageParams(nil, page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages fetches every message of a conversation, oldest first.
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]crm.Message, error) {
	var out []crm.Message
	if err := c.get(ctx, "/conversations/"+url.PathEscape(conversationID)+"/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a broker message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (*crm.Message, error) {
	body := struct {
		Content string     `json:"content"`
		Sender  crm.Sender `json:"sender"`
	}{content, crm.SenderBroker}

	var out crm.Message
	if err := c.post(ctx, "/conversations/"+url.PathEscape(conversationID)+"/messages", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
