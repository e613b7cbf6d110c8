// ABOUTME: Super-admin Platform API client (platform/api/v1)
// ABOUTME: Uses a separate master token from the account-scoped client

package chatwoot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// PlatformClient talks to the installation-level Platform API. It manages
// accounts, users, and global agent bots with a master token.
type PlatformClient struct {
	baseURL string
	call    caller
}

// NewPlatformClient creates a platform API client rooted at baseURL.
func NewPlatformClient(baseURL, apiToken string, logger *slog.Logger) *PlatformClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlatformClient{
		baseURL: baseURL + "/platform/api/v1",
		call: caller{
			httpc:  newHTTPClient(),
			logger: logger,
			api:    apiPlatform,
			token:  apiToken,
		},
	}
}

// ─── Accounts ───────────────────────────────────────────────────────────

func (c *PlatformClient) CreateAccount(ctx context.Context, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, c.baseURL+"/accounts", nil, data)
}

func (c *PlatformClient) GetAccount(ctx context.Context, accountID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/accounts/%d", c.baseURL, accountID), nil, nil)
}

func (c *PlatformClient) UpdateAccount(ctx context.Context, accountID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPatch, fmt.Sprintf("%s/accounts/%d", c.baseURL, accountID), nil, data)
}

func (c *PlatformClient) DeleteAccount(ctx context.Context, accountID int) (any, error) {
	return c.call.do(ctx, http.MethodDelete, fmt.Sprintf("%s/accounts/%d", c.baseURL, accountID), nil, nil)
}

// ─── Agent Bots (global) ────────────────────────────────────────────────

func (c *PlatformClient) ListAgentBots(ctx context.Context) (any, error) {
	return c.call.do(ctx, http.MethodGet, c.baseURL+"/agent_bots", nil, nil)
}

func (c *PlatformClient) CreateAgentBot(ctx context.Context, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, c.baseURL+"/agent_bots", nil, data)
}

func (c *PlatformClient) GetAgentBot(ctx context.Context, botID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/agent_bots/%d", c.baseURL, botID), nil, nil)
}

func (c *PlatformClient) UpdateAgentBot(ctx context.Context, botID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPatch, fmt.Sprintf("%s/agent_bots/%d", c.baseURL, botID), nil, data)
}

func (c *PlatformClient) DeleteAgentBot(ctx context.Context, botID int) (any, error) {
	return c.call.do(ctx, http.MethodDelete, fmt.Sprintf("%s/agent_bots/%d", c.baseURL, botID), nil, nil)
}

// ─── Users ──────────────────────────────────────────────────────────────

func (c *PlatformClient) CreateUser(ctx context.Context, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPost, c.baseURL+"/users", nil, data)
}

func (c *PlatformClient) GetUser(ctx context.Context, userID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/users/%d", c.baseURL, userID), nil, nil)
}

func (c *PlatformClient) UpdateUser(ctx context.Context, userID int, data map[string]any) (any, error) {
	return c.call.do(ctx, http.MethodPatch, fmt.Sprintf("%s/users/%d", c.baseURL, userID), nil, data)
}

func (c *PlatformClient) DeleteUser(ctx context.Context, userID int) (any, error) {
	return c.call.do(ctx, http.MethodDelete, fmt.Sprintf("%s/users/%d", c.baseURL, userID), nil, nil)
}

func (c *PlatformClient) GetUserSSOLink(ctx context.Context, userID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/users/%d/login", c.baseURL, userID), nil, nil)
}

// ─── Account Users ──────────────────────────────────────────────────────

func (c *PlatformClient) ListAccountUsers(ctx context.Context, accountID int) (any, error) {
	return c.call.do(ctx, http.MethodGet, fmt.Sprintf("%s/accounts/%d/account_users", c.baseURL, accountID), nil, nil)
}

func (c *PlatformClient) CreateAccountUser(ctx context.Context, accountID, userID int, role string) (any, error) {
	return c.call.do(ctx, http.MethodPost, fmt.Sprintf("%s/accounts/%d/account_users", c.baseURL, accountID), nil, map[string]any{
		"user_id": userID,
		"role":    role,
	})
}

func (c *PlatformClient) DeleteAccountUser(ctx context.Context, accountID, userID int) (any, error) {
	return c.call.do(ctx, http.MethodDelete, fmt.Sprintf("%s/accounts/%d/account_users", c.baseURL, accountID), nil, map[string]any{
		"user_id": userID,
	})
}
