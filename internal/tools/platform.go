// ABOUTME: Platform bucket: installation-level admin tools behind a master token
// ABOUTME: All writes are blocked unless MCP_PLATFORM_SAFE_MODE is explicitly "false"

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
)

var platformTools = []Descriptor{
	// ─── Accounts ───────────────────────────────────────────
	{
		Name:        "platform_create_account",
		Description: "Create a new Chatwoot account via the Platform API. Requires CHATWOOT_PLATFORM_API_TOKEN.",
		InputSchema: objSchema(`"name":{"type":"string","description":"Account name"},"locale":{"type":"string","description":"Account locale (e.g. \"en\")"}`, "name"),
	},
	{
		Name:        "platform_get_account",
		Description: "Get account details via the Platform API.",
		InputSchema: objSchema(`"account_id":{"type":"number","description":"The account ID"}`, "account_id"),
	},
	{
		Name:        "platform_update_account",
		Description: "Update an account via the Platform API.",
		InputSchema: objSchema(`"account_id":{"type":"number","description":"The account ID"},"name":{"type":"string","description":"Updated account name"},"locale":{"type":"string","description":"Updated locale"}`, "account_id"),
	},
	{
		Name:        "platform_delete_account",
		Description: "Delete an account via the Platform API. DESTRUCTIVE — permanently removes the account.",
		InputSchema: objSchema(`"account_id":{"type":"number","description":"The account ID to delete"}`, "account_id"),
	},

	// ─── Agent Bots (global) ────────────────────────────────
	{
		Name:        "platform_list_agent_bots",
		Description: "List all global agent bots via the Platform API.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
	},
	{
		Name:        "platform_create_agent_bot",
		Description: "Create a global agent bot via the Platform API.",
		InputSchema: objSchema(`"name":{"type":"string","description":"Bot name"},"description":{"type":"string","description":"Bot description"},"outgoing_url":{"type":"string","description":"Webhook URL for the bot"},"avatar_url":{"type":"string","description":"Bot avatar URL"}`, "name", "outgoing_url"),
	},
	{
		Name:        "platform_get_agent_bot",
		Description: "Get a global agent bot by ID via the Platform API.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The agent bot ID"}`, "id"),
	},
	{
		Name:        "platform_update_agent_bot",
		Description: "Update a global agent bot via the Platform API.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The agent bot ID"},"name":{"type":"string","description":"Updated bot name"},"description":{"type":"string","description":"Updated description"},"outgoing_url":{"type":"string","description":"Updated webhook URL"},"avatar_url":{"type":"string","description":"Updated avatar URL"}`, "id"),
	},
	{
		Name:        "platform_delete_agent_bot",
		Description: "Delete a global agent bot via the Platform API. DESTRUCTIVE.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The agent bot ID to delete"}`, "id"),
	},

	// ─── Users ──────────────────────────────────────────────
	{
		Name:        "platform_create_user",
		Description: "Create a new user via the Platform API.",
		InputSchema: objSchema(`"name":{"type":"string","description":"User name"},"email":{"type":"string","description":"User email"},"password":{"type":"string","description":"User password"},"custom_attributes":{"type":"object","description":"Custom attributes"}`, "name", "email"),
	},
	{
		Name:        "platform_get_user",
		Description: "Get a user by ID via the Platform API.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The user ID"}`, "id"),
	},
	{
		Name:        "platform_update_user",
		Description: "Update a user via the Platform API.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The user ID"},"name":{"type":"string","description":"Updated name"},"email":{"type":"string","description":"Updated email"},"password":{"type":"string","description":"Updated password"},"custom_attributes":{"type":"object","description":"Updated custom attributes"}`, "id"),
	},
	{
		Name:        "platform_delete_user",
		Description: "Delete a user via the Platform API. DESTRUCTIVE — permanently removes the user.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The user ID to delete"}`, "id"),
	},
	{
		Name:        "platform_get_user_sso_link",
		Description: "Get a single sign-on login link for a user via the Platform API.",
		InputSchema: objSchema(`"id":{"type":"number","description":"The user ID"}`, "id"),
	},

	// ─── Account Users ──────────────────────────────────────
	{
		Name:        "platform_list_account_users",
		Description: "List all users in an account via the Platform API.",
		InputSchema: objSchema(`"account_id":{"type":"number","description":"The account ID"}`, "account_id"),
	},
	{
		Name:        "platform_create_account_user",
		Description: "Add a user to an account via the Platform API.",
		InputSchema: objSchema(`"account_id":{"type":"number","description":"The account ID"},"user_id":{"type":"number","description":"The user ID to add"},"role":{"type":"string","description":"User role in the account","enum":["agent","administrator"]}`, "account_id", "user_id", "role"),
	},
	{
		Name:        "platform_delete_account_user",
		Description: "Remove a user from an account via the Platform API. DESTRUCTIVE.",
		InputSchema: objSchema(`"account_id":{"type":"number","description":"The account ID"},"user_id":{"type":"number","description":"The user ID to remove"}`, "account_id", "user_id"),
	},
}

// platformWrites lists the platform tools blocked while the platform
// safe mode gate is closed. Everything except pure reads.
var platformWrites = map[string]struct{}{
	"platform_create_account":      {},
	"platform_update_account":      {},
	"platform_delete_account":      {},
	"platform_create_agent_bot":    {},
	"platform_update_agent_bot":    {},
	"platform_delete_agent_bot":    {},
	"platform_create_user":         {},
	"platform_update_user":         {},
	"platform_delete_user":         {},
	"platform_create_account_user": {},
	"platform_delete_account_user": {},
}

// PlatformHandler serves the opt-in Platform API tool bucket.
type PlatformHandler struct {
	client   *chatwoot.PlatformClient
	logger   *slog.Logger
	safeMode bool
}

func NewPlatformHandler(client *chatwoot.PlatformClient, safeMode bool, logger *slog.Logger) *PlatformHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlatformHandler{client: client, logger: logger, safeMode: safeMode}
}

func (h *PlatformHandler) Handle(ctx context.Context, name string, args Args) Result {
	if h.safeMode {
		if _, write := platformWrites[name]; write {
			h.logger.Warn("platform safe mode blocked", "tool", name)
			return ErrorText(fmt.Sprintf("Blocked by MCP_PLATFORM_SAFE_MODE: %q is a write/delete operation. Set MCP_PLATFORM_SAFE_MODE=false to use this tool.", name))
		}
	}

	h.logger.Debug("platform tool call", "tool", name)
	result, err := h.dispatch(ctx, name, args)
	if err != nil {
		h.logger.Error("platform tool error", "tool", name, "error", err)
		return ErrorResult(err)
	}
	return result
}

func (h *PlatformHandler) dispatch(ctx context.Context, name string, args Args) (Result, error) {
	switch name {
	// ─── Accounts ───────────────────────────────────────
	case "platform_create_account":
		data, err := h.client.CreateAccount(ctx, args.Pick("name", "locale"))
		return jsonOrErr(data, err)

	case "platform_get_account":
		data, err := h.client.GetAccount(ctx, args.Int("account_id"))
		return jsonOrErr(data, err)

	case "platform_update_account":
		data, err := h.client.UpdateAccount(ctx, args.Int("account_id"), args.Rest("account_id"))
		return jsonOrErr(data, err)

	case "platform_delete_account":
		data, err := h.client.DeleteAccount(ctx, args.Int("account_id"))
		return jsonOrErr(data, err)

	// ─── Agent Bots ─────────────────────────────────────
	case "platform_list_agent_bots":
		data, err := h.client.ListAgentBots(ctx)
		return jsonOrErr(data, err)

	case "platform_create_agent_bot":
		data, err := h.client.CreateAgentBot(ctx, args.Pick("name", "description", "outgoing_url", "avatar_url"))
		return jsonOrErr(data, err)

	case "platform_get_agent_bot":
		data, err := h.client.GetAgentBot(ctx, args.Int("id"))
		return jsonOrErr(data, err)

	case "platform_update_agent_bot":
		data, err := h.client.UpdateAgentBot(ctx, args.Int("id"), args.Rest("id"))
		return jsonOrErr(data, err)

	case "platform_delete_agent_bot":
		data, err := h.client.DeleteAgentBot(ctx, args.Int("id"))
		return jsonOrErr(data, err)

	// ─── Users ──────────────────────────────────────────
	case "platform_create_user":
		data, err := h.client.CreateUser(ctx, args.Pick("name", "email", "password", "custom_attributes"))
		return jsonOrErr(data, err)

	case "platform_get_user":
		data, err := h.client.GetUser(ctx, args.Int("id"))
		return jsonOrErr(data, err)

	case "platform_update_user":
		data, err := h.client.UpdateUser(ctx, args.Int("id"), args.Rest("id"))
		return jsonOrErr(data, err)

	case "platform_delete_user":
		data, err := h.client.DeleteUser(ctx, args.Int("id"))
		return jsonOrErr(data, err)

	case "platform_get_user_sso_link":
		data, err := h.client.GetUserSSOLink(ctx, args.Int("id"))
		return jsonOrErr(data, err)

	// ─── Account Users ──────────────────────────────────
	case "platform_list_account_users":
		data, err := h.client.ListAccountUsers(ctx, args.Int("account_id"))
		return jsonOrErr(data, err)

	case "platform_create_account_user":
		data, err := h.client.CreateAccountUser(ctx, args.Int("account_id"), args.Int("user_id"), args.String("role"))
		return jsonOrErr(data, err)

	case "platform_delete_account_user":
		data, err := h.client.DeleteAccountUser(ctx, args.Int("account_id"), args.Int("user_id"))
		return jsonOrErr(data, err)

	default:
		return ErrorText(fmt.Sprintf("Unknown platform tool: %s", name)), nil
	}
}
