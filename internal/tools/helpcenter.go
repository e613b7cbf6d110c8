// ABOUTME: Help Center bucket: portals, articles, and categories
// ABOUTME: Portal identifiers are slugs (strings), not numeric IDs

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
)

const portalIDProp = `"portal_id":{"type":"string","description":"Portal slug identifier (string, not numeric)"}`

var helpCenterTools = []Descriptor{
	// ─── Portals ────────────────────────────────────────────
	{
		Name:        "helpcenter_list_portals",
		Description: "List all Help Center portals in the account.",
		InputSchema: acctSchema(""),
	},
	{
		Name:        "helpcenter_create_portal",
		Description: "Create a new Help Center portal.",
		InputSchema: acctSchema(`"name":{"type":"string","description":"Portal name"},"slug":{"type":"string","description":"Portal slug (URL-friendly identifier)"},"color":{"type":"string","description":"Theme color (hex, e.g. \"#1F93FF\")"},"header_text":{"type":"string","description":"Header text shown on portal"},"page_title":{"type":"string","description":"HTML page title"},"homepage_link":{"type":"string","description":"Homepage link URL"},"custom_domain":{"type":"string","description":"Custom domain for the portal"},"archived":{"type":"boolean","description":"Whether the portal is archived"},"config":{"type":"object","description":"Portal config (allowed_locales, default_locale)"}`, "name", "slug"),
	},
	{
		Name:        "helpcenter_get_portal",
		Description: "Get details of a Help Center portal by its slug.",
		InputSchema: acctSchema(portalIDProp, "portal_id"),
	},
	{
		Name:        "helpcenter_update_portal",
		Description: "Update a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"name":{"type":"string","description":"Updated portal name"},"slug":{"type":"string","description":"Updated slug"},"color":{"type":"string","description":"Updated color"},"header_text":{"type":"string","description":"Updated header text"},"page_title":{"type":"string","description":"Updated page title"},"homepage_link":{"type":"string","description":"Updated homepage link"},"custom_domain":{"type":"string","description":"Updated custom domain"},"archived":{"type":"boolean","description":"Archive status"},"config":{"type":"object","description":"Updated config"}`, "portal_id"),
	},
	{
		Name:        "helpcenter_delete_portal",
		Description: "Delete a Help Center portal. DESTRUCTIVE.",
		InputSchema: acctSchema(portalIDProp, "portal_id"),
	},

	// ─── Articles ───────────────────────────────────────────
	{
		Name:        "helpcenter_list_articles",
		Description: "List articles in a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"page":{"type":"number","description":"Page number"},"locale":{"type":"string","description":"Filter by locale"},"category_id":{"type":"number","description":"Filter by category ID"}`, "portal_id"),
	},
	{
		Name:        "helpcenter_create_article",
		Description: "Create a new article in a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"title":{"type":"string","description":"Article title"},"slug":{"type":"string","description":"Article slug"},"content":{"type":"string","description":"Article content (HTML or markdown)"},"description":{"type":"string","description":"Short description / excerpt"},"category_id":{"type":"number","description":"Category ID to place article in"},"author_id":{"type":"number","description":"Author user ID"},"position":{"type":"number","description":"Sort position"},"status":{"type":"number","description":"Article status: 0=draft, 1=published, 2=archived","enum":[0,1,2]},"locale":{"type":"string","description":"Article locale"},"associated_article_id":{"type":"number","description":"Associated article ID (translations)"},"meta":{"type":"object","description":"Metadata object"}`, "portal_id", "title", "slug"),
	},
	{
		Name:        "helpcenter_get_article",
		Description: "Get a specific article from a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"article_id":{"type":"number","description":"The article ID"}`, "portal_id", "article_id"),
	},
	{
		Name:        "helpcenter_update_article",
		Description: "Update an article in a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"article_id":{"type":"number","description":"The article ID"},"title":{"type":"string","description":"Updated title"},"slug":{"type":"string","description":"Updated slug"},"content":{"type":"string","description":"Updated content"},"description":{"type":"string","description":"Updated description"},"category_id":{"type":"number","description":"Updated category ID"},"position":{"type":"number","description":"Updated position"},"status":{"type":"number","description":"Updated status (0=draft, 1=published, 2=archived)","enum":[0,1,2]},"locale":{"type":"string","description":"Updated locale"},"meta":{"type":"object","description":"Updated metadata"}`, "portal_id", "article_id"),
	},
	{
		Name:        "helpcenter_delete_article",
		Description: "Delete an article from a Help Center portal. DESTRUCTIVE.",
		InputSchema: acctSchema(portalIDProp+`,"article_id":{"type":"number","description":"The article ID to delete"}`, "portal_id", "article_id"),
	},

	// ─── Categories ─────────────────────────────────────────
	{
		Name:        "helpcenter_list_categories",
		Description: "List categories in a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"locale":{"type":"string","description":"Filter by locale"}`, "portal_id"),
	},
	{
		Name:        "helpcenter_create_category",
		Description: "Create a new category in a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"name":{"type":"string","description":"Category name"},"description":{"type":"string","description":"Category description"},"slug":{"type":"string","description":"Category slug"},"position":{"type":"number","description":"Sort position"},"locale":{"type":"string","description":"Category locale"},"icon":{"type":"string","description":"Category icon (emoji)"},"parent_category_id":{"type":"number","description":"Parent category ID (for nesting)"},"associated_category_id":{"type":"number","description":"Associated category ID (translations)"}`, "portal_id"),
	},
	{
		Name:        "helpcenter_get_category",
		Description: "Get a specific category from a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"category_id":{"type":"number","description":"The category ID"}`, "portal_id", "category_id"),
	},
	{
		Name:        "helpcenter_update_category",
		Description: "Update a category in a Help Center portal.",
		InputSchema: acctSchema(portalIDProp+`,"category_id":{"type":"number","description":"The category ID"},"name":{"type":"string","description":"Updated name"},"description":{"type":"string","description":"Updated description"},"slug":{"type":"string","description":"Updated slug"},"position":{"type":"number","description":"Updated position"},"locale":{"type":"string","description":"Updated locale"},"icon":{"type":"string","description":"Updated icon (emoji)"},"parent_category_id":{"type":"number","description":"Updated parent category ID"}`, "portal_id", "category_id"),
	},
	{
		Name:        "helpcenter_delete_category",
		Description: "Delete a category from a Help Center portal. DESTRUCTIVE.",
		InputSchema: acctSchema(portalIDProp+`,"category_id":{"type":"number","description":"The category ID to delete"}`, "portal_id", "category_id"),
	},
}

// helpCenterDestructive lists Help Center tools blocked by MCP_SAFE_MODE.
var helpCenterDestructive = map[string]struct{}{
	"helpcenter_delete_portal":   {},
	"helpcenter_delete_article":  {},
	"helpcenter_delete_category": {},
}

// HelpCenterHandler serves the opt-in Help Center tool bucket.
type HelpCenterHandler struct {
	client   *chatwoot.Client
	logger   *slog.Logger
	safeMode bool
}

func NewHelpCenterHandler(client *chatwoot.Client, safeMode bool, logger *slog.Logger) *HelpCenterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HelpCenterHandler{client: client, logger: logger, safeMode: safeMode}
}

func (h *HelpCenterHandler) Handle(ctx context.Context, name string, args Args) Result {
	if h.safeMode {
		if _, destructive := helpCenterDestructive[name]; destructive {
			h.logger.Warn("safe mode blocked", "tool", name)
			return ErrorText(fmt.Sprintf("Blocked by MCP_SAFE_MODE: %q is a destructive operation. Set MCP_SAFE_MODE=false to use this tool.", name))
		}
	}

	h.logger.Debug("help center tool call", "tool", name)
	result, err := h.dispatch(ctx, name, args)
	if err != nil {
		h.logger.Error("help center tool error", "tool", name, "error", err)
		return ErrorResult(err)
	}
	return result
}

func (h *HelpCenterHandler) dispatch(ctx context.Context, name string, args Args) (Result, error) {
	acct := args.Account()
	portal := args.String("portal_id")

	switch name {
	// ─── Portals ────────────────────────────────────────
	case "helpcenter_list_portals":
		data, err := h.client.ListPortals(ctx, acct)
		return jsonOrErr(data, err)

	case "helpcenter_create_portal":
		data, err := h.client.CreatePortal(ctx, args.Rest("account_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_get_portal":
		data, err := h.client.GetPortal(ctx, portal, acct)
		return jsonOrErr(data, err)

	case "helpcenter_update_portal":
		data, err := h.client.UpdatePortal(ctx, portal, args.Rest("portal_id", "account_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_delete_portal":
		data, err := h.client.DeletePortal(ctx, portal, acct)
		return jsonOrErr(data, err)

	// ─── Articles ───────────────────────────────────────
	case "helpcenter_list_articles":
		data, err := h.client.ListArticles(ctx, portal, args.Pick("page", "locale", "category_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_create_article":
		data, err := h.client.CreateArticle(ctx, portal, args.Rest("portal_id", "account_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_get_article":
		data, err := h.client.GetArticle(ctx, portal, args.Int("article_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_update_article":
		data, err := h.client.UpdateArticle(ctx, portal, args.Int("article_id"), args.Rest("portal_id", "article_id", "account_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_delete_article":
		data, err := h.client.DeleteArticle(ctx, portal, args.Int("article_id"), acct)
		return jsonOrErr(data, err)

	// ─── Categories ─────────────────────────────────────
	case "helpcenter_list_categories":
		data, err := h.client.ListCategories(ctx, portal, args.Pick("locale"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_create_category":
		data, err := h.client.CreateCategory(ctx, portal, args.Rest("portal_id", "account_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_get_category":
		data, err := h.client.GetCategory(ctx, portal, args.Int("category_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_update_category":
		data, err := h.client.UpdateCategory(ctx, portal, args.Int("category_id"), args.Rest("portal_id", "category_id", "account_id"), acct)
		return jsonOrErr(data, err)

	case "helpcenter_delete_category":
		data, err := h.client.DeleteCategory(ctx, portal, args.Int("category_id"), acct)
		return jsonOrErr(data, err)

	default:
		return ErrorText(fmt.Sprintf("Unknown help center tool: %s", name)), nil
	}
}
