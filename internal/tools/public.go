// ABOUTME: Public bucket: widget API tools keyed by inbox identifier
// ABOUTME: No credential and no safe-mode gate; the bucket itself is opt-in

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
)

const inboxIdentifierProp = `"inbox_identifier":{"type":"string","description":"The unique identifier of the inbox (widget token)"}`

var publicTools = []Descriptor{
	// ─── Contacts ───────────────────────────────────────────
	{
		Name:        "public_create_contact",
		Description: "Create a new contact via the Public/Client API. Uses inbox_identifier for auth (no API token needed).",
		InputSchema: objSchema(inboxIdentifierProp+`,"identifier":{"type":"string","description":"External identifier for the contact"},"identifier_hash":{"type":"string","description":"HMAC identifier hash for verification"},"email":{"type":"string","description":"Contact email"},"name":{"type":"string","description":"Contact name"},"phone_number":{"type":"string","description":"Contact phone number"},"avatar_url":{"type":"string","description":"URL to contact avatar"},"custom_attributes":{"type":"object","description":"Custom key-value attributes"}`, "inbox_identifier"),
	},
	{
		Name:        "public_get_contact",
		Description: "Get contact details via the Public/Client API using inbox and contact identifiers.",
		InputSchema: objSchema(inboxIdentifierProp+`,"contact_identifier":{"type":"string","description":"The contact source_id / identifier"}`, "inbox_identifier", "contact_identifier"),
	},
	{
		Name:        "public_update_contact",
		Description: "Update a contact via the Public/Client API using inbox and contact identifiers.",
		InputSchema: objSchema(inboxIdentifierProp+`,"contact_identifier":{"type":"string","description":"The contact source_id / identifier"},"name":{"type":"string","description":"Updated contact name"},"email":{"type":"string","description":"Updated email"},"phone_number":{"type":"string","description":"Updated phone number"},"avatar_url":{"type":"string","description":"Updated avatar URL"},"custom_attributes":{"type":"object","description":"Updated custom attributes"}`, "inbox_identifier", "contact_identifier"),
	},

	// ─── Conversations ──────────────────────────────────────
	{
		Name:        "public_create_conversation",
		Description: "Create a new conversation via the Public/Client API. Requires inbox and contact identifiers.",
		InputSchema: objSchema(inboxIdentifierProp+`,"contact_identifier":{"type":"string","description":"The contact source_id / identifier"},"custom_attributes":{"type":"object","description":"Custom attributes for the conversation"}`, "inbox_identifier", "contact_identifier"),
	},
	{
		Name:        "public_list_conversations",
		Description: "List conversations for a contact via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"contact_identifier":{"type":"string","description":"The contact source_id / identifier"}`, "inbox_identifier", "contact_identifier"),
	},
	{
		Name:        "public_get_conversation",
		Description: "Get conversation details via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"}`, "inbox_identifier", "conversation_id"),
	},
	{
		Name:        "public_resolve_conversation",
		Description: "Toggle conversation status (resolve/reopen) via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"}`, "inbox_identifier", "conversation_id"),
	},
	{
		Name:        "public_toggle_typing",
		Description: "Toggle typing indicator for a conversation via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"},"contact_identifier":{"type":"string","description":"The contact source_id / identifier"},"typing_status":{"type":"string","description":"Typing status","enum":["on","off"]}`, "inbox_identifier", "conversation_id", "contact_identifier", "typing_status"),
	},
	{
		Name:        "public_update_last_seen",
		Description: "Update the last-seen timestamp for a contact in a conversation via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"},"contact_identifier":{"type":"string","description":"The contact source_id / identifier"}`, "inbox_identifier", "conversation_id", "contact_identifier"),
	},

	// ─── Messages ───────────────────────────────────────────
	{
		Name:        "public_create_message",
		Description: "Send a message to a conversation via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"},"contact_identifier":{"type":"string","description":"The contact source_id / identifier"},"content":{"type":"string","description":"Message content"},"echo_id":{"type":"string","description":"Temporary ID for deduplication"}`, "inbox_identifier", "conversation_id", "contact_identifier", "content"),
	},
	{
		Name:        "public_list_messages",
		Description: "List messages in a conversation via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"}`, "inbox_identifier", "conversation_id"),
	},
	{
		Name:        "public_update_message",
		Description: "Update a message (e.g. submitted_values for interactive cards) via the Public/Client API.",
		InputSchema: objSchema(inboxIdentifierProp+`,"conversation_id":{"type":"number","description":"The conversation ID"},"message_id":{"type":"number","description":"The message ID"},"submitted_values":{"type":"object","description":"Key-value pairs for card responses"}`, "inbox_identifier", "conversation_id", "message_id"),
	},
}

// PublicHandler serves the opt-in widget API tool bucket.
type PublicHandler struct {
	client *chatwoot.PublicClient
	logger *slog.Logger
}

func NewPublicHandler(client *chatwoot.PublicClient, logger *slog.Logger) *PublicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublicHandler{client: client, logger: logger}
}

func (h *PublicHandler) Handle(ctx context.Context, name string, args Args) Result {
	h.logger.Debug("public tool call", "tool", name)
	result, err := h.dispatch(ctx, name, args)
	if err != nil {
		h.logger.Error("public tool error", "tool", name, "error", err)
		return ErrorResult(err)
	}
	return result
}

func (h *PublicHandler) dispatch(ctx context.Context, name string, args Args) (Result, error) {
	inbox := args.String("inbox_identifier")

	switch name {
	// ─── Contacts ───────────────────────────────────────
	case "public_create_contact":
		data, err := h.client.CreateContact(ctx, inbox, args.Rest("inbox_identifier"))
		return jsonOrErr(data, err)

	case "public_get_contact":
		data, err := h.client.GetContact(ctx, inbox, args.String("contact_identifier"))
		return jsonOrErr(data, err)

	case "public_update_contact":
		data, err := h.client.UpdateContact(ctx, inbox, args.String("contact_identifier"), args.Rest("inbox_identifier", "contact_identifier"))
		return jsonOrErr(data, err)

	// ─── Conversations ──────────────────────────────────
	case "public_create_conversation":
		data, err := h.client.CreateConversation(ctx, inbox, args.Pick("contact_identifier", "custom_attributes"))
		return jsonOrErr(data, err)

	case "public_list_conversations":
		data, err := h.client.ListConversations(ctx, inbox, args.String("contact_identifier"))
		return jsonOrErr(data, err)

	case "public_get_conversation":
		data, err := h.client.GetConversation(ctx, inbox, args.Int("conversation_id"))
		return jsonOrErr(data, err)

	case "public_resolve_conversation":
		data, err := h.client.ResolveConversation(ctx, inbox, args.Int("conversation_id"))
		return jsonOrErr(data, err)

	case "public_toggle_typing":
		data, err := h.client.ToggleTyping(ctx, inbox, args.Int("conversation_id"), args.Pick("typing_status", "contact_identifier"))
		return jsonOrErr(data, err)

	case "public_update_last_seen":
		data, err := h.client.UpdateLastSeen(ctx, inbox, args.Int("conversation_id"), args.Pick("contact_identifier"))
		return jsonOrErr(data, err)

	// ─── Messages ───────────────────────────────────────
	case "public_create_message":
		data, err := h.client.CreateMessage(ctx, inbox, args.Int("conversation_id"), args.Pick("content", "echo_id", "contact_identifier"))
		return jsonOrErr(data, err)

	case "public_list_messages":
		data, err := h.client.ListMessages(ctx, inbox, args.Int("conversation_id"))
		return jsonOrErr(data, err)

	case "public_update_message":
		data, err := h.client.UpdateMessage(ctx, inbox, args.Int("conversation_id"), args.Int("message_id"), args.Pick("submitted_values"))
		return jsonOrErr(data, err)

	default:
		return ErrorText(fmt.Sprintf("Unknown public tool: %s", name)), nil
	}
}
