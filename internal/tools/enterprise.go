// ABOUTME: Enterprise bucket: audit logs, reporting events, account agent bots
// ABOUTME: Rides on the same Application API client as the core bucket

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
)

var enterpriseTools = []Descriptor{
	// ─── Audit Logs ─────────────────────────────────────────
	{
		Name:        "enterprise_list_audit_logs",
		Description: "List audit log entries for the account. Enterprise-only feature — requires audit_logs to be enabled.",
		InputSchema: acctSchema(`"page":{"type":"number","description":"Page number (default: 1)"}`),
	},

	// ─── Reporting Events ───────────────────────────────────
	{
		Name:        "enterprise_get_account_reporting_events",
		Description: "Get raw reporting events (first_response, resolution, etc.) for the account. Admin-only.",
		InputSchema: acctSchema(`"page":{"type":"number","description":"Page number (default: 1)"},"since":{"type":"string","description":"Unix timestamp (seconds) — start of range"},"until":{"type":"string","description":"Unix timestamp (seconds) — end of range"},"inbox_id":{"type":"number","description":"Filter by inbox ID"},"user_id":{"type":"number","description":"Filter by user/agent ID"},"name":{"type":"string","description":"Event name filter (e.g. \"first_response\", \"resolution\")"}`),
	},
	{
		Name:        "enterprise_get_conversation_reporting_events",
		Description: "Get reporting events (first response time, resolution time, etc.) for a specific conversation.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"}`, "conversation_id"),
	},

	// ─── Account Agent Bots ─────────────────────────────────
	{
		Name:        "enterprise_list_agent_bots",
		Description: "List all agent bots scoped to the account (not global platform bots).",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "enterprise_get_agent_bot",
		Description: "Get details of an account-scoped agent bot by ID.",
		InputSchema: acctSchema(`"bot_id":{"type":"number","description":"The agent bot ID"}`, "bot_id"),
	},
	{
		Name:        "enterprise_create_agent_bot",
		Description: "Create a new account-scoped agent bot.",
		InputSchema: acctSchema(`"name":{"type":"string","description":"Bot name"},"description":{"type":"string","description":"Bot description"},"outgoing_url":{"type":"string","description":"Webhook URL for the bot"},"avatar_url":{"type":"string","description":"Bot avatar URL"},"bot_type":{"type":"number","description":"Bot type (0 = webhook)"},"bot_config":{"type":"object","description":"Bot configuration object"}`, "name", "outgoing_url"),
	},
	{
		Name:        "enterprise_update_agent_bot",
		Description: "Update an account-scoped agent bot.",
		InputSchema: acctSchema(`"bot_id":{"type":"number","description":"The agent bot ID"},"name":{"type":"string","description":"Updated bot name"},"description":{"type":"string","description":"Updated description"},"outgoing_url":{"type":"string","description":"Updated webhook URL"},"avatar_url":{"type":"string","description":"Updated avatar URL"},"bot_type":{"type":"number","description":"Updated bot type"},"bot_config":{"type":"object","description":"Updated bot configuration"}`, "bot_id"),
	},
	{
		Name:        "enterprise_delete_agent_bot",
		Description: "Delete an account-scoped agent bot. DESTRUCTIVE.",
		InputSchema: acctSchema(`"bot_id":{"type":"number","description":"The agent bot ID to delete"}`, "bot_id"),
	},
}

// enterpriseDestructive lists enterprise tools blocked by MCP_SAFE_MODE.
var enterpriseDestructive = map[string]struct{}{
	"enterprise_create_agent_bot": {},
	"enterprise_update_agent_bot": {},
	"enterprise_delete_agent_bot": {},
}

// EnterpriseHandler serves the opt-in enterprise tool bucket.
type EnterpriseHandler struct {
	client   *chatwoot.Client
	logger   *slog.Logger
	safeMode bool
}

func NewEnterpriseHandler(client *chatwoot.Client, safeMode bool, logger *slog.Logger) *EnterpriseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnterpriseHandler{client: client, logger: logger, safeMode: safeMode}
}

func (h *EnterpriseHandler) Handle(ctx context.Context, name string, args Args) Result {
	if h.safeMode {
		if _, destructive := enterpriseDestructive[name]; destructive {
			h.logger.Warn("safe mode blocked", "tool", name)
			return ErrorText(fmt.Sprintf("Blocked by MCP_SAFE_MODE: %q is a destructive operation. Set MCP_SAFE_MODE=false to use this tool.", name))
		}
	}

	h.logger.Debug("enterprise tool call", "tool", name)
	result, err := h.dispatch(ctx, name, args)
	if err != nil {
		h.logger.Error("enterprise tool error", "tool", name, "error", err)
		return ErrorResult(err)
	}
	return result
}

func (h *EnterpriseHandler) dispatch(ctx context.Context, name string, args Args) (Result, error) {
	acct := args.Account()

	switch name {
	// ─── Audit Logs ─────────────────────────────────────
	case "enterprise_list_audit_logs":
		data, err := h.client.ListAuditLogs(ctx, args.Int("page"), acct)
		return jsonOrErr(data, err)

	// ─── Reporting Events ───────────────────────────────
	case "enterprise_get_account_reporting_events":
		data, err := h.client.GetAccountReportingEvents(ctx, args.Pick("page", "since", "until", "inbox_id", "user_id", "name"), acct)
		return jsonOrErr(data, err)

	case "enterprise_get_conversation_reporting_events":
		data, err := h.client.GetConversationReportingEvents(ctx, args.Int("conversation_id"), acct)
		return jsonOrErr(data, err)

	// ─── Account Agent Bots ─────────────────────────────
	case "enterprise_list_agent_bots":
		data, err := h.client.ListAccountAgentBots(ctx, acct)
		return jsonOrErr(data, err)

	case "enterprise_get_agent_bot":
		data, err := h.client.GetAccountAgentBot(ctx, args.Int("bot_id"), acct)
		return jsonOrErr(data, err)

	case "enterprise_create_agent_bot":
		data, err := h.client.CreateAccountAgentBot(ctx, args.Pick("name", "description", "outgoing_url", "avatar_url", "bot_type", "bot_config"), acct)
		return jsonOrErr(data, err)

	case "enterprise_update_agent_bot":
		data, err := h.client.UpdateAccountAgentBot(ctx, args.Int("bot_id"), args.Rest("bot_id", "account_id"), acct)
		return jsonOrErr(data, err)

	case "enterprise_delete_agent_bot":
		data, err := h.client.DeleteAccountAgentBot(ctx, args.Int("bot_id"), acct)
		return jsonOrErr(data, err)

	default:
		return ErrorText(fmt.Sprintf("Unknown enterprise tool: %s", name)), nil
	}
}
