// ABOUTME: Core bucket handler dispatching account-scoped Application API tools
// ABOUTME: MCP_SAFE_MODE blocks the destructive subset before any backend call

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
)

// coreDestructive lists the core tools blocked when MCP_SAFE_MODE is on.
var coreDestructive = map[string]struct{}{
	"delete_contact":          {},
	"delete_message":          {},
	"delete_team":             {},
	"delete_label":            {},
	"delete_canned_response":  {},
	"delete_webhook":          {},
	"delete_custom_attribute": {},
	"delete_automation_rule":  {},
	"delete_custom_filter":    {},
	"remove_inbox_agents":     {},
	"remove_team_members":     {},
	"merge_contacts":          {},
	"create_webhook":          {},
	"update_webhook":          {},
}

// CoreHandler serves the always-on Application API tool bucket.
type CoreHandler struct {
	client   *chatwoot.Client
	logger   *slog.Logger
	safeMode bool
}

// NewCoreHandler wires the core bucket to an account API client.
func NewCoreHandler(client *chatwoot.Client, safeMode bool, logger *slog.Logger) *CoreHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoreHandler{client: client, logger: logger, safeMode: safeMode}
}

// Handle executes one core tool call. The safe-mode gate runs first so
// blocked calls never touch the backend.
func (h *CoreHandler) Handle(ctx context.Context, name string, args Args) Result {
	if h.safeMode {
		if _, destructive := coreDestructive[name]; destructive {
			h.logger.Warn("safe mode blocked", "tool", name)
			return ErrorText(fmt.Sprintf("Blocked by MCP_SAFE_MODE: %q is a destructive operation. Set MCP_SAFE_MODE=false or remove it to use this tool.", name))
		}
	}

	h.logger.Debug("tool call", "tool", name)
	result, err := h.dispatch(ctx, name, args)
	if err != nil {
		h.logger.Error("tool error", "tool", name, "error", err)
		return ErrorResult(err)
	}
	return result
}

func (h *CoreHandler) dispatch(ctx context.Context, name string, args Args) (Result, error) {
	acct := args.Account()

	switch name {
	// ─── Health ─────────────────────────────────────────
	case "chatwoot_health":
		info, err := h.client.Health(ctx, acct)
		if err != nil {
			return Result{}, err
		}
		accountName := info.AccountName
		if accountName == "" {
			accountName = "OK"
		}
		return TextResult(fmt.Sprintf("Connected to Chatwoot successfully.\nAccount ID: %d\nAccount: %s", info.AccountID, accountName)), nil

	// ─── Contacts ───────────────────────────────────────
	case "list_contacts":
		data, err := h.client.ListContacts(ctx, args.Int("page"), args.String("sort"), acct)
		return jsonOrErr(data, err)

	case "get_contact":
		data, err := h.client.GetContact(ctx, args.Int("contact_id"), acct)
		return jsonOrErr(data, err)

	case "create_contact":
		data, err := h.client.CreateContact(ctx, args.Pick("name", "email", "phone_number", "identifier", "inbox_id", "custom_attributes"), acct)
		return jsonOrErr(data, err)

	case "update_contact":
		data, err := h.client.UpdateContact(ctx, args.Int("contact_id"), args.Pick("name", "email", "phone_number", "custom_attributes"), acct)
		return jsonOrErr(data, err)

	case "search_contacts":
		data, err := h.client.SearchContacts(ctx, args.String("query"), args.Int("page"), acct)
		return jsonOrErr(data, err)

	case "get_contact_conversations":
		data, err := h.client.GetContactConversations(ctx, args.Int("contact_id"), acct)
		return jsonOrErr(data, err)

	case "delete_contact":
		if _, err := h.client.DeleteContact(ctx, args.Int("contact_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Contact deleted successfully."), nil

	case "filter_contacts":
		data, err := h.client.FilterContacts(ctx, args.List("filters"), args.Int("page"), acct)
		return jsonOrErr(data, err)

	case "merge_contacts":
		data, err := h.client.MergeContacts(ctx, args.Int("base_contact_id"), args.Int("mergee_contact_id"), acct)
		return jsonOrErr(data, err)

	case "get_contact_labels":
		data, err := h.client.GetContactLabels(ctx, args.Int("contact_id"), acct)
		return jsonOrErr(data, err)

	case "add_labels_to_contact":
		data, err := h.client.AddLabelsToContact(ctx, args.Int("contact_id"), args.Strings("labels"), acct)
		return jsonOrErr(data, err)

	case "get_contactable_inboxes":
		data, err := h.client.GetContactableInboxes(ctx, args.Int("contact_id"), acct)
		return jsonOrErr(data, err)

	// ─── Conversations ──────────────────────────────────
	case "list_conversations":
		data, err := h.client.ListConversations(ctx, args.Pick("status", "assignee_type", "inbox_id", "team_id", "labels", "page"), acct)
		return jsonOrErr(data, err)

	case "get_conversation":
		data, err := h.client.GetConversation(ctx, args.Int("conversation_id"), acct)
		return jsonOrErr(data, err)

	case "create_conversation":
		body := args.Pick("inbox_id", "contact_id", "status", "assignee_id", "team_id")
		if message := args.String("message"); message != "" {
			body["message"] = map[string]any{"content": message}
		}
		data, err := h.client.CreateConversation(ctx, body, acct)
		return jsonOrErr(data, err)

	case "update_conversation_status":
		data, err := h.client.UpdateConversationStatus(ctx, args.Int("conversation_id"), args.String("status"), acct)
		return jsonOrErr(data, err)

	case "assign_conversation":
		data, err := h.client.AssignConversation(ctx, args.Int("conversation_id"), args.Int("assignee_id"), args.Int("team_id"), acct)
		return jsonOrErr(data, err)

	case "add_labels_to_conversation":
		data, err := h.client.AddLabelsToConversation(ctx, args.Int("conversation_id"), args.Strings("labels"), acct)
		return jsonOrErr(data, err)

	case "set_conversation_priority":
		data, err := h.client.ToggleConversationPriority(ctx, args.Int("conversation_id"), args.String("priority"), acct)
		return jsonOrErr(data, err)

	case "get_conversation_labels":
		data, err := h.client.GetConversationLabels(ctx, args.Int("conversation_id"), acct)
		return jsonOrErr(data, err)

	case "get_conversation_counts":
		data, err := h.client.GetConversationCounts(ctx, args.String("status"), acct)
		return jsonOrErr(data, err)

	case "filter_conversations":
		data, err := h.client.FilterConversations(ctx, args.List("filters"), args.Int("page"), acct)
		return jsonOrErr(data, err)

	case "set_conversation_custom_attributes":
		data, err := h.client.SetConversationCustomAttributes(ctx, args.Int("conversation_id"), args.Object("custom_attributes"), acct)
		return jsonOrErr(data, err)

	// ─── Messages ───────────────────────────────────────
	case "send_message":
		data, err := h.client.SendMessage(ctx, args.Int("conversation_id"), args.String("content"), args.Pick("private", "message_type"), acct)
		return jsonOrErr(data, err)

	case "list_messages":
		data, err := h.client.ListMessages(ctx, args.Int("conversation_id"), acct)
		return jsonOrErr(data, err)

	case "delete_message":
		if _, err := h.client.DeleteMessage(ctx, args.Int("conversation_id"), args.Int("message_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Message deleted successfully."), nil

	// ─── Agents ─────────────────────────────────────────
	case "list_agents":
		data, err := h.client.ListAgents(ctx, acct)
		return jsonOrErr(data, err)

	case "get_agent":
		data, err := h.client.GetAgent(ctx, args.Int("agent_id"), acct)
		return jsonOrErr(data, err)

	// ─── Teams ──────────────────────────────────────────
	case "list_teams":
		data, err := h.client.ListTeams(ctx, acct)
		return jsonOrErr(data, err)

	case "get_team":
		data, err := h.client.GetTeam(ctx, args.Int("team_id"), acct)
		return jsonOrErr(data, err)

	case "get_team_members":
		data, err := h.client.GetTeamMembers(ctx, args.Int("team_id"), acct)
		return jsonOrErr(data, err)

	case "create_team":
		data, err := h.client.CreateTeam(ctx, args.Pick("name", "description", "allow_auto_assign"), acct)
		return jsonOrErr(data, err)

	case "update_team":
		data, err := h.client.UpdateTeam(ctx, args.Int("team_id"), args.Pick("name", "description", "allow_auto_assign"), acct)
		return jsonOrErr(data, err)

	case "delete_team":
		if _, err := h.client.DeleteTeam(ctx, args.Int("team_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Team deleted successfully."), nil

	case "add_team_members":
		data, err := h.client.AddTeamMembers(ctx, args.Int("team_id"), args.Ints("user_ids"), acct)
		return jsonOrErr(data, err)

	case "update_team_members":
		data, err := h.client.UpdateTeamMembers(ctx, args.Int("team_id"), args.Ints("user_ids"), acct)
		return jsonOrErr(data, err)

	case "remove_team_members":
		data, err := h.client.RemoveTeamMembers(ctx, args.Int("team_id"), args.Ints("user_ids"), acct)
		return jsonOrErr(data, err)

	// ─── Inboxes ────────────────────────────────────────
	case "list_inboxes":
		data, err := h.client.ListInboxes(ctx, acct)
		return jsonOrErr(data, err)

	case "get_inbox":
		data, err := h.client.GetInbox(ctx, args.Int("inbox_id"), acct)
		return jsonOrErr(data, err)

	case "get_inbox_agent_bot":
		data, err := h.client.GetInboxAgentBot(ctx, args.Int("inbox_id"), acct)
		return jsonOrErr(data, err)

	case "list_inbox_agents":
		data, err := h.client.ListInboxAgents(ctx, args.Int("inbox_id"), acct)
		return jsonOrErr(data, err)

	case "add_inbox_agents":
		data, err := h.client.AddInboxAgents(ctx, args.Int("inbox_id"), args.Ints("user_ids"), acct)
		return jsonOrErr(data, err)

	case "update_inbox_agents":
		data, err := h.client.UpdateInboxAgents(ctx, args.Int("inbox_id"), args.Ints("user_ids"), acct)
		return jsonOrErr(data, err)

	case "remove_inbox_agents":
		data, err := h.client.RemoveInboxAgents(ctx, args.Int("inbox_id"), args.Ints("user_ids"), acct)
		return jsonOrErr(data, err)

	// ─── Labels ─────────────────────────────────────────
	case "list_labels":
		data, err := h.client.ListLabels(ctx, acct)
		return jsonOrErr(data, err)

	case "create_label":
		data, err := h.client.CreateLabel(ctx, args.Pick("title", "description", "color", "show_on_sidebar"), acct)
		return jsonOrErr(data, err)

	case "update_label":
		data, err := h.client.UpdateLabel(ctx, args.Int("label_id"), args.Pick("title", "description", "color", "show_on_sidebar"), acct)
		return jsonOrErr(data, err)

	case "delete_label":
		if _, err := h.client.DeleteLabel(ctx, args.Int("label_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Label deleted successfully."), nil

	// ─── Canned Responses ───────────────────────────────
	case "list_canned_responses":
		data, err := h.client.ListCannedResponses(ctx, acct)
		return jsonOrErr(data, err)

	case "create_canned_response":
		data, err := h.client.CreateCannedResponse(ctx, args.Pick("short_code", "content"), acct)
		return jsonOrErr(data, err)

	case "update_canned_response":
		data, err := h.client.UpdateCannedResponse(ctx, args.Int("canned_response_id"), args.Pick("short_code", "content"), acct)
		return jsonOrErr(data, err)

	case "delete_canned_response":
		if _, err := h.client.DeleteCannedResponse(ctx, args.Int("canned_response_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Canned response deleted successfully."), nil

	// ─── Webhooks ───────────────────────────────────────
	case "list_webhooks":
		data, err := h.client.ListWebhooks(ctx, acct)
		return jsonOrErr(data, err)

	case "create_webhook":
		data, err := h.client.CreateWebhook(ctx, args.Pick("url", "subscriptions"), acct)
		return jsonOrErr(data, err)

	case "update_webhook":
		data, err := h.client.UpdateWebhook(ctx, args.Int("webhook_id"), args.Pick("url", "subscriptions"), acct)
		return jsonOrErr(data, err)

	case "delete_webhook":
		if _, err := h.client.DeleteWebhook(ctx, args.Int("webhook_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Webhook deleted successfully."), nil

	// ─── Reports ────────────────────────────────────────
	case "get_account_report":
		data, err := h.client.GetAccountReport(ctx, args.Pick("metric", "type", "since", "until", "id"), acct)
		return jsonOrErr(data, err)

	case "get_report_summary":
		data, err := h.client.GetReportSummary(ctx, args.Pick("since", "until", "type", "id", "group_by", "business_hours"), acct)
		return jsonOrErr(data, err)

	case "get_conversation_statistics":
		data, err := h.client.GetConversationStatistics(ctx, args.String("entity_type"), args.Pick("since", "until", "business_hours"), acct)
		return jsonOrErr(data, err)

	case "get_conversation_metrics":
		data, err := h.client.GetConversationMetrics(ctx, args.String("type"), args.String("user_id"), acct)
		return jsonOrErr(data, err)

	case "get_first_response_time_report":
		data, err := h.client.GetFirstResponseTimeDistribution(ctx, args.Pick("since", "until"), acct)
		return jsonOrErr(data, err)

	case "get_inbox_label_matrix_report":
		data, err := h.client.GetInboxLabelMatrix(ctx, args.Pick("since", "until", "inbox_ids", "label_ids"), acct)
		return jsonOrErr(data, err)

	case "get_outgoing_messages_report":
		data, err := h.client.GetOutgoingMessagesCount(ctx, args.String("group_by"), args.Pick("since", "until"), acct)
		return jsonOrErr(data, err)

	// ─── Custom Attributes ──────────────────────────────
	case "list_custom_attributes":
		data, err := h.client.ListCustomAttributes(ctx, args.String("model"), acct)
		return jsonOrErr(data, err)

	case "get_custom_attribute":
		data, err := h.client.GetCustomAttribute(ctx, args.Int("attribute_id"), acct)
		return jsonOrErr(data, err)

	case "create_custom_attribute":
		data, err := h.client.CreateCustomAttribute(ctx, args.Pick("attribute_display_name", "attribute_display_type", "attribute_description", "attribute_key", "attribute_model", "attribute_values", "default_value"), acct)
		return jsonOrErr(data, err)

	case "update_custom_attribute":
		data, err := h.client.UpdateCustomAttribute(ctx, args.Int("attribute_id"), args.Pick("attribute_display_name", "attribute_description", "attribute_values", "default_value"), acct)
		return jsonOrErr(data, err)

	case "delete_custom_attribute":
		if _, err := h.client.DeleteCustomAttribute(ctx, args.Int("attribute_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Custom attribute deleted successfully."), nil

	// ─── Automation Rules ───────────────────────────────
	case "list_automation_rules":
		data, err := h.client.ListAutomationRules(ctx, acct)
		return jsonOrErr(data, err)

	case "get_automation_rule":
		data, err := h.client.GetAutomationRule(ctx, args.Int("rule_id"), acct)
		return jsonOrErr(data, err)

	case "create_automation_rule":
		data, err := h.client.CreateAutomationRule(ctx, args.Pick("name", "description", "event_name", "conditions", "actions"), acct)
		return jsonOrErr(data, err)

	case "update_automation_rule":
		data, err := h.client.UpdateAutomationRule(ctx, args.Int("rule_id"), args.Pick("name", "description", "event_name", "conditions", "actions"), acct)
		return jsonOrErr(data, err)

	case "delete_automation_rule":
		if _, err := h.client.DeleteAutomationRule(ctx, args.Int("rule_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Automation rule deleted successfully."), nil

	// ─── Custom Filters ─────────────────────────────────
	case "list_custom_filters":
		data, err := h.client.ListCustomFilters(ctx, args.String("filter_type"), acct)
		return jsonOrErr(data, err)

	case "get_custom_filter":
		data, err := h.client.GetCustomFilter(ctx, args.Int("filter_id"), acct)
		return jsonOrErr(data, err)

	case "create_custom_filter":
		data, err := h.client.CreateCustomFilter(ctx, args.Pick("name", "filter_type", "query"), acct)
		return jsonOrErr(data, err)

	case "update_custom_filter":
		data, err := h.client.UpdateCustomFilter(ctx, args.Int("filter_id"), args.Pick("name", "query"), acct)
		return jsonOrErr(data, err)

	case "delete_custom_filter":
		if _, err := h.client.DeleteCustomFilter(ctx, args.Int("filter_id"), acct); err != nil {
			return Result{}, err
		}
		return TextResult("Custom filter deleted successfully."), nil

	// ─── Misc ───────────────────────────────────────────
	case "list_integrations":
		data, err := h.client.ListIntegrations(ctx, acct)
		return jsonOrErr(data, err)

	case "get_profile":
		data, err := h.client.GetProfile(ctx, acct)
		return jsonOrErr(data, err)

	default:
		return ErrorText(fmt.Sprintf("Unknown tool: %s", name)), nil
	}
}

func jsonOrErr(data any, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return JSONResult(data), nil
}
