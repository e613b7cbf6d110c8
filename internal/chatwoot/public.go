// ABOUTME: Unauthenticated widget API client scoped per inbox identifier
// ABOUTME: (public/api/v1/inboxes/<identifier>)

package chatwoot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// PublicClient talks to the widget-facing public API. It carries no
// credential; every call is scoped to an inbox identifier instead.
type PublicClient struct {
	baseURL string
	call    caller
}

// NewPublicClient creates a public API client rooted at baseURL.
func NewPublicClient(baseURL string, logger *slog.Logger) *PublicClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublicClient{
		baseURL: baseURL,
		call: caller{
			httpc:  newHTTPClient(),
			logger: logger,
			api:    apiPublic,
		},
	}
}

func (c *PublicClient) inboxURL(inboxIdentifier string) string {
	return fmt.Sprintf("%s/public/api/v1/inboxes/%s", c.baseURL, url.PathEscape(inboxIdentifier))
}

// ─── Contacts ───────────────────────────────────────────────────────────

func (c *PublicClient) CreateContact(ctx context.Context, inboxIdentifier string, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, c.inboxURL(inboxIdentifier)+"/contacts", nil, data)
}

func (c *PublicClient) GetContact(ctx context.Context, inboxIdentifier, contactIdentifier string) (any, error) {
	return c.call.do(ctx, http.MethodGet, c.inboxURL(inboxIdentifier)+"/contacts/"+url.PathEscape(contactIdentifier), nil, nil)
}

func (c *PublicClient) UpdateContact(ctx context.Context, inboxIdentifier, contactIdentifier string, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPatch, c.inboxURL(inboxIdentifier)+"/contacts/"+url.PathEscape(contactIdentifier), nil, data)
}

// ─── Conversations ──────────────────────────────────────────────────────

func (c *PublicClient) CreateConversation(ctx context.Context, inboxIdentifier string, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, c.inboxURL(inboxIdentifier)+"/conversations", nil, data)
}

func (c *PublicClient) ListConversations(ctx context.Context, inboxIdentifier, contactIdentifier string) (any, error) {
	query := url.Values{}
	query.Set("contact_identifier", contactIdentifier)
	return c.call.do(ctx, http.MethodGet, c.inboxURL(inboxIdentifier)+"/conversations", query, nil)
}

func (c *PublicClient) GetConversation(ctx context.Context, inboxIdentifier string, conversationID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/conversations/%d", c.inboxURL(inboxIdentifier), conversationID), nil, nil)
}

func (c *PublicClient) ResolveConversation(ctx context.Context, inboxIdentifier string, conversationID int) (any, error) {
	return c.call.do(ctx, http.MethodPost, fmt.Sprintf("%s/conversations/%d/toggle_status", c.inboxURL(inboxIdentifier), conversationID), nil, nil)
}

func (c *PublicClient) ToggleTyping(ctx context.Context, inboxIdentifier string, conversationID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, fmt.Sprintf("%s/conversations/%d/toggle_typing", c.inboxURL(inboxIdentifier), conversationID), nil, data)
}

func (c *PublicClient) UpdateLastSeen(ctx context.Context, inboxIdentifier string, conversationID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, fmt.Sprintf("%s/conversations/%d/update_last_seen", c.inboxURL(inboxIdentifier), conversationID), nil, data)
}

// ─── Messages ───────────────────────────────────────────────────────────

func (c *PublicClient) CreateMessage(ctx context.Context, inboxIdentifier string, conversationID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, fmt.Sprintf("%s/conversations/%d/messages", c.inboxURL(inboxIdentifier), conversationID), nil, data)
}

func (c *PublicClient) ListMessages(ctx context.Context, inboxIdentifier string, conversationID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/conversations/%d/messages", c.inboxURL(inboxIdentifier), conversationID), nil, nil)
}

func (c *PublicClient) UpdateMessage(ctx context.Context, inboxIdentifier string, conversationID, messageID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPatch, fmt.Sprintf("%s/conversations/%d/messages/%d", c.inboxURL(inboxIdentifier), conversationID, messageID), nil, data)
}
