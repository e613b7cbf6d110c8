// ABOUTME: Core bucket catalog: account-scoped Application API tools
// ABOUTME: Always advertised; destructive entries are gated by MCP_SAFE_MODE

package tools

var coreTools = []Descriptor{
	// ─── Health ─────────────────────────────────────────────
	{
		Name:        "chatwoot_health",
		Description: "Test connection to the Chatwoot instance and return account information. Use this to verify the MCP server is properly configured.",
		InputSchema: acctSchema(""),
	},

	// ─── Contacts ───────────────────────────────────────────
	{
		Name:        "list_contacts",
		Description: "List contacts in the Chatwoot account with pagination. Returns contact name, email, phone, and metadata.",
		InputSchema: acctSchema(`"page":{"type":"number","description":"Page number (default: 1)"},"sort":{"type":"string","description":"Sort field","enum":["name","email","phone_number","last_activity_at","created_at"]}`),
	},
	{
		Name:        "get_contact",
		Description: "Get detailed information about a specific contact by their ID.",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID"}`, "contact_id"),
	},
	{
		Name:        "create_contact",
		Description: "Create a new contact in Chatwoot. At least one of name, email, or phone_number is recommended.",
		InputSchema: acctSchema(`"name":{"type":"string","description":"Contact name"},"email":{"type":"string","description":"Contact email address"},"phone_number":{"type":"string","description":"Phone number with country code (e.g., +5212345678)"},"identifier":{"type":"string","description":"Custom unique identifier"},"inbox_id":{"type":"number","description":"Inbox to associate the contact with"},"custom_attributes":{"type":"object","description":"Custom attributes as key-value pairs"}`),
	},
	{
		Name:        "update_contact",
		Description: "Update an existing contact. Only provided fields will be updated.",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID to update"},"name":{"type":"string","description":"New name"},"email":{"type":"string","description":"New email"},"phone_number":{"type":"string","description":"New phone number"},"custom_attributes":{"type":"object","description":"Custom attributes to set"}`, "contact_id"),
	},
	{
		Name:        "search_contacts",
		Description: "Search contacts by name, email, phone number, or identifier. Returns matching contacts.",
		InputSchema: acctSchema(`"query":{"type":"string","description":"Search query (name, email, phone, or identifier)"},"page":{"type":"number","description":"Page number (default: 1)"}`, "query"),
	},
	{
		Name:        "get_contact_conversations",
		Description: "Get all conversations associated with a specific contact.",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID"}`, "contact_id"),
	},
	{
		Name:        "delete_contact",
		Description: "Permanently delete a contact and all associated data.",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID to delete"}`, "contact_id"),
	},
	{
		Name:        "filter_contacts",
		Description: "Filter contacts using advanced query conditions. Each filter has field, operator, and value.",
		InputSchema: acctSchema(`"filters":{"type":"array","items":{"type":"object"},"description":"Array of filter objects with field, filter_operator, and values (e.g., [{\"attribute_key\":\"city\",\"filter_operator\":\"equal_to\",\"values\":[\"Paris\"]}])"},"page":{"type":"number","description":"Page number (default: 1)"}`, "filters"),
	},
	{
		Name:        "merge_contacts",
		Description: "Merge two contacts into one. The base contact remains and receives all data (conversations, labels, custom attributes) from the mergee contact. The mergee contact is permanently deleted.",
		InputSchema: acctSchema(`"base_contact_id":{"type":"number","description":"The contact ID that will remain after the merge"},"mergee_contact_id":{"type":"number","description":"The contact ID that will be merged and deleted"}`, "base_contact_id", "mergee_contact_id"),
	},
	{
		Name:        "get_contact_labels",
		Description: "Get all labels currently applied to a specific contact.",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID"}`, "contact_id"),
	},
	{
		Name:        "add_labels_to_contact",
		Description: "Set labels on a contact. Provide the full list of labels that should be applied (replaces existing labels).",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID"},"labels":{"type":"array","items":{"type":"string"},"description":"Label names to apply to the contact"}`, "contact_id", "labels"),
	},
	{
		Name:        "get_contactable_inboxes",
		Description: "Get the list of inboxes through which a contact can be reached. Useful for determining available channels for a contact.",
		InputSchema: acctSchema(`"contact_id":{"type":"number","description":"The contact ID"}`, "contact_id"),
	},

	// ─── Conversations ──────────────────────────────────────
	{
		Name:        "list_conversations",
		Description: "List conversations with optional filters for status, assignee, inbox, team, and labels.",
		InputSchema: acctSchema(`"status":{"type":"string","description":"Filter by status","enum":["open","resolved","pending","snoozed","all"]},"assignee_type":{"type":"string","description":"Filter by assignee type","enum":["me","unassigned","all","assigned"]},"inbox_id":{"type":"number","description":"Filter by inbox ID"},"team_id":{"type":"number","description":"Filter by team ID"},"labels":{"type":"array","items":{"type":"string"},"description":"Filter by label names"},"page":{"type":"number","description":"Page number (default: 1)"}`),
	},
	{
		Name:        "get_conversation",
		Description: "Get detailed information about a specific conversation, including contact info, assignee, labels, and recent messages.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"}`, "conversation_id"),
	},
	{
		Name:        "create_conversation",
		Description: "Create a new conversation. Requires an inbox_id. Optionally link to a contact and send an initial message.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"Inbox ID for the conversation"},"contact_id":{"type":"number","description":"Contact ID to associate"},"message":{"type":"string","description":"Initial message content"},"status":{"type":"string","description":"Initial status","enum":["open","pending"]},"assignee_id":{"type":"number","description":"Agent ID to assign"},"team_id":{"type":"number","description":"Team ID to assign"}`, "inbox_id"),
	},
	{
		Name:        "update_conversation_status",
		Description: "Change the status of a conversation (open, resolved, pending, or snoozed).",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"status":{"type":"string","description":"New status","enum":["open","resolved","pending","snoozed"]}`, "conversation_id", "status"),
	},
	{
		Name:        "assign_conversation",
		Description: "Assign a conversation to a specific agent, team, or both. Omit both to unassign.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"assignee_id":{"type":"number","description":"Agent ID to assign (omit to unassign agent)"},"team_id":{"type":"number","description":"Team ID to assign (omit to unassign team)"}`, "conversation_id"),
	},
	{
		Name:        "add_labels_to_conversation",
		Description: "Add one or more labels to a conversation. Existing labels are preserved.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"labels":{"type":"array","items":{"type":"string"},"description":"Label names to add"}`, "conversation_id", "labels"),
	},
	{
		Name:        "set_conversation_priority",
		Description: "Set the priority level of a conversation.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"priority":{"type":"string","description":"Priority level","enum":["urgent","high","medium","low","none"]}`, "conversation_id", "priority"),
	},
	{
		Name:        "get_conversation_labels",
		Description: "Get all labels currently applied to a conversation.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"}`, "conversation_id"),
	},
	{
		Name:        "get_conversation_counts",
		Description: "Get conversation count statistics grouped by status (open, pending, resolved, etc.).",
		InputSchema: acctSchema(`"status":{"type":"string","description":"Optional status filter","enum":["open","resolved","pending","snoozed","all"]}`),
	},
	{
		Name:        "filter_conversations",
		Description: "Filter conversations using advanced query conditions. Each filter has attribute_key, filter_operator, values, and optional query_operator (AND/OR).",
		InputSchema: acctSchema(`"filters":{"type":"array","items":{"type":"object"},"description":"Array of filter objects (e.g., [{\"attribute_key\":\"status\",\"filter_operator\":\"equal_to\",\"values\":[\"open\"],\"query_operator\":\"AND\"}])"},"page":{"type":"number","description":"Page number (default: 1)"}`, "filters"),
	},
	{
		Name:        "set_conversation_custom_attributes",
		Description: "Set custom attributes on a conversation. Useful for tagging conversations with metadata like order IDs, categories, etc.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"custom_attributes":{"type":"object","description":"Custom attributes as key-value pairs (e.g., {\"order_id\": \"12345\", \"priority_tier\": \"gold\"})"}`, "conversation_id", "custom_attributes"),
	},

	// ─── Messages ───────────────────────────────────────────
	{
		Name:        "send_message",
		Description: "Send a message in a conversation. Can be a regular reply or a private note (visible only to agents).",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"content":{"type":"string","description":"Message content"},"private":{"type":"boolean","description":"If true, sends as a private note (only visible to agents). Default: false"},"message_type":{"type":"string","description":"Message type","enum":["outgoing","incoming"]}`, "conversation_id", "content"),
	},
	{
		Name:        "list_messages",
		Description: "Get all messages in a conversation, ordered chronologically.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"}`, "conversation_id"),
	},
	{
		Name:        "delete_message",
		Description: "Delete a specific message from a conversation.",
		InputSchema: acctSchema(`"conversation_id":{"type":"number","description":"The conversation ID"},"message_id":{"type":"number","description":"The message ID to delete"}`, "conversation_id", "message_id"),
	},

	// ─── Agents ─────────────────────────────────────────────
	{
		Name:        "list_agents",
		Description: "List all agents in the Chatwoot account with their roles and availability status.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "get_agent",
		Description: "Get detailed information about a specific agent by their ID.",
		InputSchema: acctSchema(`"agent_id":{"type":"number","description":"The agent ID"}`, "agent_id"),
	},

	// ─── Teams ──────────────────────────────────────────────
	{
		Name:        "list_teams",
		Description: "List all teams in the Chatwoot account.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "get_team",
		Description: "Get detailed information about a specific team.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID"}`, "team_id"),
	},
	{
		Name:        "get_team_members",
		Description: "Get the list of agents in a specific team.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID"}`, "team_id"),
	},
	{
		Name:        "create_team",
		Description: "Create a new team in the Chatwoot account.",
		InputSchema: acctSchema(`"name":{"type":"string","description":"Team name"},"description":{"type":"string","description":"Team description"},"allow_auto_assign":{"type":"boolean","description":"Allow automatic assignment of conversations (default: true)"}`, "name"),
	},
	{
		Name:        "update_team",
		Description: "Update an existing team. Only provided fields will be updated.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID to update"},"name":{"type":"string","description":"New team name"},"description":{"type":"string","description":"New description"},"allow_auto_assign":{"type":"boolean","description":"Allow auto-assign"}`, "team_id"),
	},
	{
		Name:        "delete_team",
		Description: "Delete a team from the Chatwoot account.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID to delete"}`, "team_id"),
	},
	{
		Name:        "add_team_members",
		Description: "Add one or more agents to a team by their user IDs.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID"},"user_ids":{"type":"array","items":{"type":"number"},"description":"Array of agent user IDs to add to the team"}`, "team_id", "user_ids"),
	},
	{
		Name:        "update_team_members",
		Description: "Replace the agent list for a team. Sets exactly the provided user IDs as team members.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID"},"user_ids":{"type":"array","items":{"type":"number"},"description":"Array of agent user IDs that should be in the team"}`, "team_id", "user_ids"),
	},
	{
		Name:        "remove_team_members",
		Description: "Remove one or more agents from a team.",
		InputSchema: acctSchema(`"team_id":{"type":"number","description":"The team ID"},"user_ids":{"type":"array","items":{"type":"number"},"description":"Array of agent user IDs to remove from the team"}`, "team_id", "user_ids"),
	},

	// ─── Inboxes ────────────────────────────────────────────
	{
		Name:        "list_inboxes",
		Description: "List all inboxes (channels) in the Chatwoot account. Shows channel type, name, and configuration.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "get_inbox",
		Description: "Get detailed information about a specific inbox including channel configuration.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"The inbox ID"}`, "inbox_id"),
	},
	{
		Name:        "get_inbox_agent_bot",
		Description: "Get the agent bot associated with a specific inbox, if any.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"The inbox ID"}`, "inbox_id"),
	},
	{
		Name:        "list_inbox_agents",
		Description: "List all agents assigned to a specific inbox.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"The inbox ID"}`, "inbox_id"),
	},
	{
		Name:        "add_inbox_agents",
		Description: "Add one or more agents to an inbox by their user IDs.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"The inbox ID"},"user_ids":{"type":"array","items":{"type":"number"},"description":"Array of agent user IDs to add"}`, "inbox_id", "user_ids"),
	},
	{
		Name:        "update_inbox_agents",
		Description: "Replace the agent list for an inbox. All agents except those in user_ids will be removed.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"The inbox ID"},"user_ids":{"type":"array","items":{"type":"number"},"description":"Array of agent user IDs that should be in the inbox"}`, "inbox_id", "user_ids"),
	},
	{
		Name:        "remove_inbox_agents",
		Description: "Remove one or more agents from an inbox.",
		InputSchema: acctSchema(`"inbox_id":{"type":"number","description":"The inbox ID"},"user_ids":{"type":"array","items":{"type":"number"},"description":"Array of agent user IDs to remove"}`, "inbox_id", "user_ids"),
	},

	// ─── Labels ─────────────────────────────────────────────
	{
		Name:        "list_labels",
		Description: "List all labels available in the Chatwoot account.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "create_label",
		Description: "Create a new label for categorizing conversations and contacts.",
		InputSchema: acctSchema(`"title":{"type":"string","description":"Label name"},"description":{"type":"string","description":"Label description"},"color":{"type":"string","description":"Hex color code (e.g., #FF0000)"},"show_on_sidebar":{"type":"boolean","description":"Show label on sidebar (default: true)"}`, "title"),
	},
	{
		Name:        "update_label",
		Description: "Update an existing label. Only provided fields will be updated.",
		InputSchema: acctSchema(`"label_id":{"type":"number","description":"The label ID to update"},"title":{"type":"string","description":"New label title"},"description":{"type":"string","description":"New description"},"color":{"type":"string","description":"New hex color code (e.g., #FF0000)"},"show_on_sidebar":{"type":"boolean","description":"Show on sidebar"}`, "label_id"),
	},
	{
		Name:        "delete_label",
		Description: "Delete a label from the Chatwoot account.",
		InputSchema: acctSchema(`"label_id":{"type":"number","description":"The label ID to delete"}`, "label_id"),
	},

	// ─── Canned Responses ───────────────────────────────────
	{
		Name:        "list_canned_responses",
		Description: "List all canned (pre-written) responses. These are quick reply templates for agents.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "create_canned_response",
		Description: "Create a new canned response template for quick replies.",
		InputSchema: acctSchema(`"short_code":{"type":"string","description":"Short code to trigger this response (e.g., \"greeting\")"},"content":{"type":"string","description":"The response content text"}`, "short_code", "content"),
	},
	{
		Name:        "update_canned_response",
		Description: "Update an existing canned response template.",
		InputSchema: acctSchema(`"canned_response_id":{"type":"number","description":"The canned response ID"},"short_code":{"type":"string","description":"New short code"},"content":{"type":"string","description":"New response content"}`, "canned_response_id"),
	},
	{
		Name:        "delete_canned_response",
		Description: "Delete a canned response template.",
		InputSchema: acctSchema(`"canned_response_id":{"type":"number","description":"The canned response ID to delete"}`, "canned_response_id"),
	},

	// ─── Webhooks ───────────────────────────────────────────
	{
		Name:        "list_webhooks",
		Description: "List all registered webhooks in the Chatwoot account.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "create_webhook",
		Description: "Register a new webhook endpoint to receive event notifications from Chatwoot.",
		InputSchema: acctSchema(`"url":{"type":"string","description":"The webhook endpoint URL"},"subscriptions":{"type":"array","items":{"type":"string"},"description":"Events to subscribe to (e.g., [\"conversation_created\", \"message_created\", \"conversation_status_changed\"])"}`, "url", "subscriptions"),
	},
	{
		Name:        "update_webhook",
		Description: "Update an existing webhook URL or subscriptions.",
		InputSchema: acctSchema(`"webhook_id":{"type":"number","description":"The webhook ID to update"},"url":{"type":"string","description":"New webhook URL"},"subscriptions":{"type":"array","items":{"type":"string"},"description":"Updated event subscriptions"}`, "webhook_id"),
	},
	{
		Name:        "delete_webhook",
		Description: "Remove a webhook subscription.",
		InputSchema: acctSchema(`"webhook_id":{"type":"number","description":"The webhook ID to delete"}`, "webhook_id"),
	},

	// ─── Reports ────────────────────────────────────────────
	{
		Name:        "get_account_report",
		Description: "Get account-level reports and metrics (via API v2). Includes conversation counts, response times, and resolution metrics.",
		InputSchema: acctSchema(`"metric":{"type":"string","description":"The metric to retrieve","enum":["conversations_count","incoming_messages_count","outgoing_messages_count","avg_first_response_time","avg_resolution_time","resolutions_count"]},"type":{"type":"string","description":"Report scope","enum":["account","agent","inbox","label","team"]},"id":{"type":"string","description":"Entity ID when type is agent/inbox/label/team"},"since":{"type":"string","description":"Start timestamp (Unix timestamp or ISO 8601)"},"until":{"type":"string","description":"End timestamp (Unix timestamp or ISO 8601)"}`, "metric", "type"),
	},
	{
		Name:        "get_report_summary",
		Description: "Get a summary report with aggregated metrics for a time period (via API v2). Includes conversations_count, incoming/outgoing messages, avg response/resolution times.",
		InputSchema: acctSchema(`"since":{"type":"string","description":"Start timestamp (Unix timestamp or ISO 8601)"},"until":{"type":"string","description":"End timestamp (Unix timestamp or ISO 8601)"},"type":{"type":"string","description":"Report scope","enum":["account","agent","inbox","label","team"]},"id":{"type":"string","description":"Entity ID when type is agent/inbox/label/team"},"group_by":{"type":"string","description":"Group results by period","enum":["day","week","month","year"]},"business_hours":{"type":"boolean","description":"Calculate metrics using business hours only"}`),
	},
	{
		Name:        "get_conversation_statistics",
		Description: "Get conversation statistics grouped by entity (via API v2). Returns metrics like conversations_count, avg_first_response_time, avg_resolution_time per entity.",
		InputSchema: acctSchema(`"entity_type":{"type":"string","description":"Entity to group statistics by","enum":["agent","team","inbox","channel"]},"since":{"type":"string","description":"Start timestamp (Unix timestamp)"},"until":{"type":"string","description":"End timestamp (Unix timestamp)"},"business_hours":{"type":"boolean","description":"Calculate metrics using business hours only"}`, "entity_type"),
	},
	{
		Name:        "get_conversation_metrics",
		Description: "Get conversation metrics for the account or a specific agent (via API v2). Returns open, unattended, and unassigned conversation counts.",
		InputSchema: acctSchema(`"type":{"type":"string","description":"Metric scope","enum":["account","agent"]},"user_id":{"type":"string","description":"Agent user ID (required when type is \"agent\")"}`, "type"),
	},
	{
		Name:        "get_first_response_time_report",
		Description: "Get first response time distribution grouped by channel (via API v2). Shows how quickly agents respond across different channels.",
		InputSchema: acctSchema(`"since":{"type":"string","description":"Start timestamp (Unix timestamp)"},"until":{"type":"string","description":"End timestamp (Unix timestamp)"}`),
	},
	{
		Name:        "get_inbox_label_matrix_report",
		Description: "Get a matrix report of conversations grouped by inbox and label (via API v2). Useful for understanding label distribution across inboxes.",
		InputSchema: acctSchema(`"since":{"type":"string","description":"Start timestamp (Unix timestamp)"},"until":{"type":"string","description":"End timestamp (Unix timestamp)"},"inbox_ids":{"type":"array","items":{"type":"number"},"description":"Filter by specific inbox IDs"},"label_ids":{"type":"array","items":{"type":"number"},"description":"Filter by specific label IDs"}`),
	},
	{
		Name:        "get_outgoing_messages_report",
		Description: "Get outgoing messages count grouped by entity (via API v2). Shows message volume per agent, team, inbox, or label.",
		InputSchema: acctSchema(`"group_by":{"type":"string","description":"Entity to group messages by","enum":["agent","team","inbox","label"]},"since":{"type":"string","description":"Start timestamp (Unix timestamp)"},"until":{"type":"string","description":"End timestamp (Unix timestamp)"}`, "group_by"),
	},

	// ─── Custom Attributes ──────────────────────────────────
	{
		Name:        "list_custom_attributes",
		Description: "List all custom attribute definitions. Can filter by model type (contact or conversation).",
		InputSchema: acctSchema(`"model":{"type":"string","description":"Filter by model type","enum":["contact_attribute","conversation_attribute"]}`),
	},
	{
		Name:        "get_custom_attribute",
		Description: "Get details of a specific custom attribute definition by its ID.",
		InputSchema: acctSchema(`"attribute_id":{"type":"number","description":"The custom attribute definition ID"}`, "attribute_id"),
	},
	{
		Name:        "create_custom_attribute",
		Description: "Create a new custom attribute definition for contacts or conversations.",
		InputSchema: acctSchema(`"attribute_display_name":{"type":"string","description":"Display name for the attribute"},"attribute_display_type":{"type":"string","description":"UI display type","enum":["text","number","currency","percent","link","date","list","checkbox"]},"attribute_description":{"type":"string","description":"Description of the attribute"},"attribute_key":{"type":"string","description":"Unique key identifier (snake_case)"},"attribute_model":{"type":"string","description":"Model to apply attribute to","enum":["contact_attribute","conversation_attribute"]},"attribute_values":{"type":"array","items":{"type":"string"},"description":"Possible values (for list type)"},"default_value":{"type":"string","description":"Default value"}`, "attribute_display_name", "attribute_display_type", "attribute_key", "attribute_model"),
	},
	{
		Name:        "update_custom_attribute",
		Description: "Update an existing custom attribute definition.",
		InputSchema: acctSchema(`"attribute_id":{"type":"number","description":"The custom attribute ID"},"attribute_display_name":{"type":"string","description":"New display name"},"attribute_description":{"type":"string","description":"New description"},"attribute_values":{"type":"array","items":{"type":"string"},"description":"Updated possible values (for list type)"},"default_value":{"type":"string","description":"New default value"}`, "attribute_id"),
	},
	{
		Name:        "delete_custom_attribute",
		Description: "Delete a custom attribute definition.",
		InputSchema: acctSchema(`"attribute_id":{"type":"number","description":"The custom attribute ID to delete"}`, "attribute_id"),
	},

	// ─── Automation Rules ───────────────────────────────────
	{
		Name:        "list_automation_rules",
		Description: "List all automation rules in the Chatwoot account.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "get_automation_rule",
		Description: "Get detailed information about a specific automation rule.",
		InputSchema: acctSchema(`"rule_id":{"type":"number","description":"The automation rule ID"}`, "rule_id"),
	},
	{
		Name:        "create_automation_rule",
		Description: "Create a new automation rule with event trigger, conditions, and actions.",
		InputSchema: acctSchema(`"name":{"type":"string","description":"Rule name"},"description":{"type":"string","description":"Rule description"},"event_name":{"type":"string","description":"Event that triggers the rule","enum":["conversation_created","conversation_updated","message_created"]},"conditions":{"type":"array","items":{"type":"object"},"description":"Array of condition objects (e.g., [{\"attribute_key\":\"status\",\"filter_operator\":\"equal_to\",\"values\":[\"open\"]}])"},"actions":{"type":"array","items":{"type":"object"},"description":"Array of action objects (e.g., [{\"action_name\":\"assign_agent\",\"action_params\":[1]}])"}`, "name", "event_name", "conditions", "actions"),
	},
	{
		Name:        "update_automation_rule",
		Description: "Update an existing automation rule.",
		InputSchema: acctSchema(`"rule_id":{"type":"number","description":"The automation rule ID"},"name":{"type":"string","description":"New rule name"},"description":{"type":"string","description":"New description"},"event_name":{"type":"string","description":"New event trigger","enum":["conversation_created","conversation_updated","message_created"]},"conditions":{"type":"array","items":{"type":"object"},"description":"Updated conditions"},"actions":{"type":"array","items":{"type":"object"},"description":"Updated actions"}`, "rule_id"),
	},
	{
		Name:        "delete_automation_rule",
		Description: "Delete an automation rule.",
		InputSchema: acctSchema(`"rule_id":{"type":"number","description":"The automation rule ID to delete"}`, "rule_id"),
	},

	// ─── Custom Filters ─────────────────────────────────────
	{
		Name:        "list_custom_filters",
		Description: "List all saved custom filters. Can filter by type (conversation, contact, or report).",
		InputSchema: acctSchema(`"filter_type":{"type":"string","description":"Filter type","enum":["conversation","contact","report"]}`),
	},
	{
		Name:        "get_custom_filter",
		Description: "Get a specific custom filter by its ID.",
		InputSchema: acctSchema(`"filter_id":{"type":"number","description":"The custom filter ID"}`, "filter_id"),
	},
	{
		Name:        "create_custom_filter",
		Description: "Create a new custom filter for conversations, contacts, or reports.",
		InputSchema: acctSchema(`"name":{"type":"string","description":"Filter name"},"filter_type":{"type":"string","description":"Filter type","enum":["conversation","contact","report"]},"query":{"type":"object","description":"Filter query object with conditions (e.g., {\"attribute_key\":\"status\",\"filter_operator\":\"equal_to\",\"values\":[\"open\"]})"}`, "name", "filter_type", "query"),
	},
	{
		Name:        "update_custom_filter",
		Description: "Update an existing custom filter.",
		InputSchema: acctSchema(`"filter_id":{"type":"number","description":"The custom filter ID"},"name":{"type":"string","description":"New filter name"},"query":{"type":"object","description":"Updated filter query"}`, "filter_id"),
	},
	{
		Name:        "delete_custom_filter",
		Description: "Delete a custom filter.",
		InputSchema: acctSchema(`"filter_id":{"type":"number","description":"The custom filter ID to delete"}`, "filter_id"),
	},

	// ─── Misc ───────────────────────────────────────────────
	{
		Name:        "list_integrations",
		Description: "List all available integrations (apps) in the Chatwoot account.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "get_profile",
		Description: "Get the profile information of the authenticated user/agent.",
		InputSchema: acctSchema(""),
	},
}
