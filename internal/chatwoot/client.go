// ABOUTME: Account-scoped Chatwoot Application API client (api/v1 and the
// ABOUTME: api/v2 reporting surface) with per-call account override

package chatwoot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tvplus/chatwoot-mcp/internal/config"
)

// ErrAccountRequired is returned when no default account is configured and
// the call did not supply an override.
var ErrAccountRequired = errors.New("account_id is required when CHATWOOT_ACCOUNT_ID is not set")

// Client talks to the account-scoped Application API. The zero accountID on
// any method selects the configured default account.
type Client struct {
	baseURL          string
	defaultAccountID int
	call             caller
}

// NewClient creates an account API client from configuration. A nil logger
// falls back to slog.Default().
func NewClient(cfg config.ChatwootConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:          cfg.BaseURL,
		defaultAccountID: cfg.AccountID,
		call: caller{
			httpc:  newHTTPClient(),
			logger: logger,
			api:    apiApplication,
			token:  cfg.APIToken,
		},
	}
}

// DefaultAccountID returns the configured default account scope (0 if unset).
func (c *Client) DefaultAccountID() int {
	return c.defaultAccountID
}

// accountURL resolves the api/v1 base for the given account override.
func (c *Client) accountURL(accountID int) (string, error) {
	id := accountID
	if id == 0 {
		id = c.defaultAccountID
	}
	if id == 0 {
		return "", ErrAccountRequired
	}
	return fmt.Sprintf("%s/api/v1/accounts/%d", c.baseURL, id), nil
}

// accountURLV2 resolves the api/v2 reporting base for the given override.
func (c *Client) accountURLV2(accountID int) (string, error) {
	id := accountID
	if id == 0 {
		id = c.defaultAccountID
	}
	if id == 0 {
		return "", ErrAccountRequired
	}
	return fmt.Sprintf("%s/api/v2/accounts/%d", c.baseURL, id), nil
}

func (c *Client) get(ctx context.Context, accountID int, path string, query url.Values) (any, error) {
	base, err := c.accountURL(accountID)
	if err != nil {
		return nil, err
	}
	return c.call.do(ctx, http.MethodGet, base+path, query, nil)
}

func (c *Client) getV2(ctx context.Context, accountID int, path string, query url.Values) (any, error) {
	base, err := c.accountURLV2(accountID)
	if err != nil {
		return nil, err
	}
	return c.call.do(ctx, http.MethodGet, base+path, query, nil)
}

func (c *Client) post(ctx context.Context, accountID int, path string, body any) (any, error) {
	base, err := c.accountURL(accountID)
	if err != nil {
		return nil, err
	}
	return c.call.do(ctx, http.MethodPost, base+path, nil, body)
}

func (c *Client) patch(ctx context.Context, accountID int, path string, body any) (any, error) {
	base, err := c.accountURL(accountID)
	if err != nil {
		return nil, err
	}
	return c.call.do(ctx, http.MethodPatch, base+path, nil, body)
}

func (c *Client) delete(ctx context.Context, accountID int, path string, body any) (any, error) {
	base, err := c.accountURL(accountID)
	if err != nil {
		return nil, err
	}
	return c.call.do(ctx, http.MethodDelete, base+path, nil, body)
}

// queryValues converts a loose parameter bag into URL query values, skipping
// nil and empty-string entries. Slices use the rails-style key[] form.
func queryValues(params map[string]any) url.Values {
	q := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
		case string:
			if v != "" {
				q.Set(key, v)
			}
		case bool:
			q.Set(key, strconv.FormatBool(v))
		case int:
			q.Set(key, strconv.Itoa(v))
		case float64:
			q.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		case []string:
			for _, item := range v {
				q.Add(key+"[]", item)
			}
		case []int:
			for _, item := range v {
				q.Add(key+"[]", strconv.Itoa(item))
			}
		default:
			q.Set(key, fmt.Sprint(v))
		}
	}
	return q
}

// HealthInfo is the result of a connectivity probe against the account root.
type HealthInfo struct {
	AccountID   int
	AccountName string
}

// Health probes the account root endpoint and reports the account it landed on.
func (c *Client) Health(ctx context.Context, accountID int) (*HealthInfo, error) {
	out, err := c.get(ctx, accountID, "/", nil)
	if err != nil {
		return nil, err
	}
	id := accountID
	if id == 0 {
		id = c.defaultAccountID
	}
	info := &HealthInfo{AccountID: id}
	if m, ok := out.(map[string]any); ok {
		info.AccountName, _ = m["name"].(string)
	}
	return info, nil
}

// ─── Contacts ───────────────────────────────────────────────────────────

func (c *Client) ListContacts(ctx context.Context, page int, sortBy string, accountID int) (any, error) {
	if page == 0 {
		page = 1
	}
	if sortBy == "" {
		sortBy = "name"
	}
	return c.get(ctx, accountID, "/contacts", queryValues(map[string]any{"page": page, "sort": sortBy}))
}

func (c *Client) GetContact(ctx context.Context, contactID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/contacts/%d", contactID), nil)
}

func (c *Client) CreateContact(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/contacts", data)
}

func (c *Client) UpdateContact(ctx context.Context, contactID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/contacts/%d", contactID), data)
}

func (c *Client) DeleteContact(ctx context.Context, contactID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/contacts/%d", contactID), nil)
}

func (c *Client) SearchContacts(ctx context.Context, query string, page int, accountID int) (any, error) {
	if page == 0 {
		page = 1
	}
	return c.get(ctx, accountID, "/contacts/search", queryValues(map[string]any{"q": query, "page": page}))
}

func (c *Client) FilterContacts(ctx context.Context, filters []any, page int, accountID int) (any, error) {
	if page == 0 {
		page = 1
	}
	return c.post(ctx, accountID, "/contacts/filter", map[string]any{"payload": filters, "page": page})
}

func (c *Client) GetContactConversations(ctx context.Context, contactID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/contacts/%d/conversations", contactID), nil)
}

func (c *Client) MergeContacts(ctx context.Context, baseContactID, mergeeContactID int, accountID int) (any, error) {
	return c.post(ctx, accountID, "/actions/contact_merge", map[string]any{
		"base_contact_id":   baseContactID,
		"mergee_contact_id": mergeeContactID,
	})
}

func (c *Client) GetContactLabels(ctx context.Context, contactID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/contacts/%d/labels", contactID), nil)
}

func (c *Client) AddLabelsToContact(ctx context.Context, contactID int, labels []string, accountID int) (any, error) {
	return c.post(ctx, accountID, fmt.Sprintf("/contacts/%d/labels", contactID), map[string]any{"labels": labels})
}

func (c *Client) GetContactableInboxes(ctx context.Context, contactID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/contacts/%d/contactable_inboxes", contactID), nil)
}

// ─── Conversations ──────────────────────────────────────────────────────

func (c *Client) ListConversations(ctx context.Context, params map[string]any, accountID int) (any, error) {
	return c.get(ctx, accountID, "/conversations", queryValues(params))
}

func (c *Client) GetConversation(ctx context.Context, conversationID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/conversations/%d", conversationID), nil)
}

func (c *Client) CreateConversation(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/conversations", data)
}

func (c *Client) UpdateConversationStatus(ctx context.Context, conversationID int, status string, accountID int) (any, error) {
	return c.post(ctx, accountID, fmt.Sprintf("/conversations/%d/toggle_status", conversationID), map[string]any{"status": status})
}

func (c *Client) AssignConversation(ctx context.Context, conversationID, assigneeID, teamID int, accountID int) (any, error) {
	body := map[string]any{}
	if assigneeID != 0 {
		body["assignee_id"] = assigneeID
	}
	if teamID != 0 {
		body["team_id"] = teamID
	}
	return c.post(ctx, accountID, fmt.Sprintf("/conversations/%d/assignments", conversationID), body)
}

// AddLabelsToConversation merges the new labels with the conversation's
// current set before writing, since the labels endpoint replaces the list.
func (c *Client) AddLabelsToConversation(ctx context.Context, conversationID int, labels []string, accountID int) (any, error) {
	current, err := c.GetConversation(ctx, conversationID, accountID)
	if err != nil {
		return nil, err
	}

	merged := make([]string, 0, len(labels))
	seen := make(map[string]struct{})
	if m, ok := current.(map[string]any); ok {
		if existing, ok := m["labels"].([]any); ok {
			for _, item := range existing {
				if s, ok := item.(string); ok {
					if _, dup := seen[s]; !dup {
						seen[s] = struct{}{}
						merged = append(merged, s)
					}
				}
			}
		}
	}
	for _, s := range labels {
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			merged = append(merged, s)
		}
	}

	return c.post(ctx, accountID, fmt.Sprintf("/conversations/%d/labels", conversationID), map[string]any{"labels": merged})
}

func (c *Client) GetConversationLabels(ctx context.Context, conversationID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/conversations/%d/labels", conversationID), nil)
}

func (c *Client) ToggleConversationPriority(ctx context.Context, conversationID int, priority string, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/conversations/%d", conversationID), map[string]any{"priority": priority})
}

func (c *Client) GetConversationCounts(ctx context.Context, status string, accountID int) (any, error) {
	return c.get(ctx, accountID, "/conversations/counts", queryValues(map[string]any{"status": status}))
}

func (c *Client) FilterConversations(ctx context.Context, filters []any, page int, accountID int) (any, error) {
	if page == 0 {
		page = 1
	}
	return c.post(ctx, accountID, "/conversations/filter", map[string]any{"payload": filters, "page": page})
}

func (c *Client) SetConversationCustomAttributes(ctx context.Context, conversationID int, attrs map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, fmt.Sprintf("/conversations/%d/custom_attributes", conversationID), map[string]any{"custom_attributes": attrs})
}

// ─── Messages ───────────────────────────────────────────────────────────

func (c *Client) ListMessages(ctx context.Context, conversationID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/conversations/%d/messages", conversationID), nil)
}

func (c *Client) SendMessage(ctx context.Context, conversationID int, content string, options map[string]any, accountID int) (any, error) {
	body := map[string]any{
		"content":      content,
		"message_type": "outgoing",
		"private":      false,
		"content_type": "text",
	}
	for key, value := range options {
		if value != nil {
			body[key] = value
		}
	}
	return c.post(ctx, accountID, fmt.Sprintf("/conversations/%d/messages", conversationID), body)
}

func (c *Client) DeleteMessage(ctx context.Context, conversationID, messageID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/conversations/%d/messages/%d", conversationID, messageID), nil)
}

// ─── Agents ─────────────────────────────────────────────────────────────

func (c *Client) ListAgents(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/agents", nil)
}

func (c *Client) GetAgent(ctx context.Context, agentID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/agents/%d", agentID), nil)
}

// ─── Teams ──────────────────────────────────────────────────────────────

func (c *Client) ListTeams(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/teams", nil)
}

func (c *Client) GetTeam(ctx context.Context, teamID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/teams/%d", teamID), nil)
}

func (c *Client) CreateTeam(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/teams", data)
}

func (c *Client) UpdateTeam(ctx context.Context, teamID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/teams/%d", teamID), data)
}

func (c *Client) DeleteTeam(ctx context.Context, teamID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/teams/%d", teamID), nil)
}

func (c *Client) GetTeamMembers(ctx context.Context, teamID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/teams/%d/team_members", teamID), nil)
}

func (c *Client) AddTeamMembers(ctx context.Context, teamID int, userIDs []int, accountID int) (any, error) {
	return c.post(ctx, accountID, fmt.Sprintf("/teams/%d/team_members", teamID), map[string]any{"user_ids": userIDs})
}

func (c *Client) UpdateTeamMembers(ctx context.Context, teamID int, userIDs []int, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/teams/%d/team_members", teamID), map[string]any{"user_ids": userIDs})
}

func (c *Client) RemoveTeamMembers(ctx context.Context, teamID int, userIDs []int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/teams/%d/team_members", teamID), map[string]any{"user_ids": userIDs})
}

// ─── Inboxes ────────────────────────────────────────────────────────────

func (c *Client) ListInboxes(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/inboxes", nil)
}

func (c *Client) GetInbox(ctx context.Context, inboxID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/inboxes/%d", inboxID), nil)
}

func (c *Client) GetInboxAgentBot(ctx context.Context, inboxID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/inboxes/%d/agent_bot", inboxID), nil)
}

func (c *Client) ListInboxAgents(ctx context.Context, inboxID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/inbox_members/%d", inboxID), nil)
}

func (c *Client) AddInboxAgents(ctx context.Context, inboxID int, userIDs []int, accountID int) (any, error) {
	return c.post(ctx, accountID, "/inbox_members", map[string]any{"inbox_id": inboxID, "user_ids": userIDs})
}

func (c *Client) UpdateInboxAgents(ctx context.Context, inboxID int, userIDs []int, accountID int) (any, error) {
	return c.patch(ctx, accountID, "/inbox_members", map[string]any{"inbox_id": inboxID, "user_ids": userIDs})
}

func (c *Client) RemoveInboxAgents(ctx context.Context, inboxID int, userIDs []int, accountID int) (any, error) {
	return c.delete(ctx, accountID, "/inbox_members", map[string]any{"inbox_id": inboxID, "user_ids": userIDs})
}

// ─── Labels ─────────────────────────────────────────────────────────────

func (c *Client) ListLabels(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/labels", nil)
}

func (c *Client) CreateLabel(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/labels", data)
}

func (c *Client) UpdateLabel(ctx context.Context, labelID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/labels/%d", labelID), data)
}

func (c *Client) DeleteLabel(ctx context.Context, labelID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/labels/%d", labelID), nil)
}

// ─── Canned Responses ───────────────────────────────────────────────────

func (c *Client) ListCannedResponses(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/canned_responses", nil)
}

func (c *Client) CreateCannedResponse(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/canned_responses", data)
}

func (c *Client) UpdateCannedResponse(ctx context.Context, cannedResponseID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/canned_responses/%d", cannedResponseID), data)
}

func (c *Client) DeleteCannedResponse(ctx context.Context, cannedResponseID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/canned_responses/%d", cannedResponseID), nil)
}

// ─── Webhooks ───────────────────────────────────────────────────────────

func (c *Client) ListWebhooks(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/webhooks", nil)
}

func (c *Client) CreateWebhook(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/webhooks", data)
}

func (c *Client) UpdateWebhook(ctx context.Context, webhookID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/webhooks/%d", webhookID), data)
}

func (c *Client) DeleteWebhook(ctx context.Context, webhookID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/webhooks/%d", webhookID), nil)
}

// ─── Reports (api/v2) ───────────────────────────────────────────────────

func (c *Client) GetAccountReport(ctx context.Context, params map[string]any, accountID int) (any, error) {
	return c.getV2(ctx, accountID, "/reports", queryValues(params))
}

func (c *Client) GetReportSummary(ctx context.Context, params map[string]any, accountID int) (any, error) {
	return c.getV2(ctx, accountID, "/reports/summary", queryValues(params))
}

func (c *Client) GetConversationStatistics(ctx context.Context, entityType string, params map[string]any, accountID int) (any, error) {
	return c.getV2(ctx, accountID, "/summary_reports/"+entityType, queryValues(params))
}

func (c *Client) GetConversationMetrics(ctx context.Context, metricType, userID string, accountID int) (any, error) {
	params := map[string]any{"type": metricType}
	if userID != "" {
		params["user_id"] = userID
	}
	return c.getV2(ctx, accountID, "/reports/conversations", queryValues(params))
}

func (c *Client) GetFirstResponseTimeDistribution(ctx context.Context, params map[string]any, accountID int) (any, error) {
	return c.getV2(ctx, accountID, "/reports/first_response_time_distribution", queryValues(params))
}

func (c *Client) GetInboxLabelMatrix(ctx context.Context, params map[string]any, accountID int) (any, error) {
	return c.getV2(ctx, accountID, "/reports/inbox_label_matrix", queryValues(params))
}

func (c *Client) GetOutgoingMessagesCount(ctx context.Context, groupBy string, params map[string]any, accountID int) (any, error) {
	merged := map[string]any{"group_by": groupBy}
	for key, value := range params {
		merged[key] = value
	}
	return c.getV2(ctx, accountID, "/reports/outgoing_messages_count", queryValues(merged))
}

// ─── Custom Attributes ──────────────────────────────────────────────────

func (c *Client) ListCustomAttributes(ctx context.Context, model string, accountID int) (any, error) {
	return c.get(ctx, accountID, "/custom_attribute_definitions", queryValues(map[string]any{"attribute_model": model}))
}

func (c *Client) GetCustomAttribute(ctx context.Context, attributeID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/custom_attribute_definitions/%d", attributeID), nil)
}

func (c *Client) CreateCustomAttribute(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/custom_attribute_definitions", data)
}

func (c *Client) UpdateCustomAttribute(ctx context.Context, attributeID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/custom_attribute_definitions/%d", attributeID), data)
}

func (c *Client) DeleteCustomAttribute(ctx context.Context, attributeID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/custom_attribute_definitions/%d", attributeID), nil)
}

// ─── Automation Rules ───────────────────────────────────────────────────

func (c *Client) ListAutomationRules(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/automation_rules", nil)
}

func (c *Client) GetAutomationRule(ctx context.Context, ruleID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/automation_rules/%d", ruleID), nil)
}

func (c *Client) CreateAutomationRule(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/automation_rules", data)
}

func (c *Client) UpdateAutomationRule(ctx context.Context, ruleID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/automation_rules/%d", ruleID), data)
}

func (c *Client) DeleteAutomationRule(ctx context.Context, ruleID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/automation_rules/%d", ruleID), nil)
}

// ─── Custom Filters ─────────────────────────────────────────────────────

func (c *Client) ListCustomFilters(ctx context.Context, filterType string, accountID int) (any, error) {
	return c.get(ctx, accountID, "/custom_filters", queryValues(map[string]any{"filter_type": filterType}))
}

func (c *Client) GetCustomFilter(ctx context.Context, filterID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/custom_filters/%d", filterID), nil)
}

func (c *Client) CreateCustomFilter(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/custom_filters", data)
}

func (c *Client) UpdateCustomFilter(ctx context.Context, filterID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/custom_filters/%d", filterID), data)
}

func (c *Client) DeleteCustomFilter(ctx context.Context, filterID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/custom_filters/%d", filterID), nil)
}

// ─── Misc ───────────────────────────────────────────────────────────────

func (c *Client) ListIntegrations(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/integrations/apps", nil)
}

func (c *Client) GetProfile(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/profile", nil)
}

// ─── Enterprise: Audit Logs and Reporting Events ────────────────────────

func (c *Client) ListAuditLogs(ctx context.Context, page int, accountID int) (any, error) {
	if page == 0 {
		page = 1
	}
	return c.get(ctx, accountID, "/audit_logs", queryValues(map[string]any{"page": page}))
}

func (c *Client) GetAccountReportingEvents(ctx context.Context, params map[string]any, accountID int) (any, error) {
	return c.get(ctx, accountID, "/reporting_events", queryValues(params))
}

func (c *Client) GetConversationReportingEvents(ctx context.Context, conversationID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/conversations/%d/reporting_events", conversationID), nil)
}

// ─── Enterprise: Account Agent Bots ─────────────────────────────────────

func (c *Client) ListAccountAgentBots(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/agent_bots", nil)
}

func (c *Client) GetAccountAgentBot(ctx context.Context, botID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/agent_bots/%d", botID), nil)
}

func (c *Client) CreateAccountAgentBot(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/agent_bots", data)
}

func (c *Client) UpdateAccountAgentBot(ctx context.Context, botID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/agent_bots/%d", botID), data)
}

func (c *Client) DeleteAccountAgentBot(ctx context.Context, botID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/agent_bots/%d", botID), nil)
}

// ─── Help Center: Portals ───────────────────────────────────────────────

func (c *Client) ListPortals(ctx context.Context, accountID int) (any, error) {
	return c.get(ctx, accountID, "/portals", nil)
}

func (c *Client) CreatePortal(ctx context.Context, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/portals", data)
}

func (c *Client) GetPortal(ctx context.Context, portalID string, accountID int) (any, error) {
	return c.get(ctx, accountID, "/portals/"+url.PathEscape(portalID), nil)
}

func (c *Client) UpdatePortal(ctx context.Context, portalID string, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, "/portals/"+url.PathEscape(portalID), data)
}

func (c *Client) DeletePortal(ctx context.Context, portalID string, accountID int) (any, error) {
	return c.delete(ctx, accountID, "/portals/"+url.PathEscape(portalID), nil)
}

// ─── Help Center: Articles ──────────────────────────────────────────────

func (c *Client) ListArticles(ctx context.Context, portalID string, params map[string]any, accountID int) (any, error) {
	return c.get(ctx, accountID, "/portals/"+url.PathEscape(portalID)+"/articles", queryValues(params))
}

func (c *Client) CreateArticle(ctx context.Context, portalID string, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/portals/"+url.PathEscape(portalID)+"/articles", data)
}

func (c *Client) GetArticle(ctx context.Context, portalID string, articleID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/portals/%s/articles/%d", url.PathEscape(portalID), articleID), nil)
}

func (c *Client) UpdateArticle(ctx context.Context, portalID string, articleID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/portals/%s/articles/%d", url.PathEscape(portalID), articleID), data)
}

func (c *Client) DeleteArticle(ctx context.Context, portalID string, articleID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/portals/%s/articles/%d", url.PathEscape(portalID), articleID), nil)
}

// ─── Help Center: Categories ────────────────────────────────────────────

func (c *Client) ListCategories(ctx context.Context, portalID string, params map[string]any, accountID int) (any, error) {
	return c.get(ctx, accountID, "/portals/"+url.PathEscape(portalID)+"/categories", queryValues(params))
}

func (c *Client) CreateCategory(ctx context.Context, portalID string, data map[string]any, accountID int) (any, error) {
	return c.post(ctx, accountID, "/portals/"+url.PathEscape(portalID)+"/categories", data)
}

func (c *Client) GetCategory(ctx context.Context, portalID string, categoryID int, accountID int) (any, error) {
	return c.get(ctx, accountID, fmt.Sprintf("/portals/%s/categories/%d", url.PathEscape(portalID), categoryID), nil)
}

func (c *Client) UpdateCategory(ctx context.Context, portalID string, categoryID int, data map[string]any, accountID int) (any, error) {
	return c.patch(ctx, accountID, fmt.Sprintf("/portals/%s/categories/%d", url.PathEscape(portalID), categoryID), data)
}

func (c *Client) DeleteCategory(ctx context.Context, portalID string, categoryID int, accountID int) (any, error) {
	return c.delete(ctx, accountID, fmt.Sprintf("/portals/%s/categories/%d", url.PathEscape(portalID), categoryID), nil)
}
