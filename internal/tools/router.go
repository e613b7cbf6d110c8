// ABOUTME: Router: merged catalog, bucket routing, and disabled-bucket errors
// ABOUTME: Precedence is public > platform > enterprise > help center > core

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
	"github.com/tvplus/chatwoot-mcp/internal/config"
)

// Bucket name sets are static: routing is decided by name membership even
// when a bucket is disabled, so a disabled bucket's tools fail with a
// pointer at the enable flag instead of falling through to core.
var (
	publicToolNames     = nameSet(publicTools)
	platformToolNames   = nameSet(platformTools)
	enterpriseToolNames = nameSet(enterpriseTools)
	helpCenterToolNames = nameSet(helpCenterTools)
)

// Router owns the advertised tool catalog and dispatches calls to the
// bucket handlers. Construct once at startup; safe for concurrent use.
type Router struct {
	logger *slog.Logger
	tools  []Descriptor

	core       *CoreHandler
	public     *PublicHandler
	platform   *PlatformHandler
	enterprise *EnterpriseHandler
	helpCenter *HelpCenterHandler
}

// NewRouter builds the backend clients and handlers from configuration and
// assembles the catalog from the enabled buckets. The platform bucket stays
// off when its token is missing even if the enable flag is set.
func NewRouter(cfg *config.Config, logger *slog.Logger) (*Router, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client := chatwoot.NewClient(cfg.Chatwoot, logger)

	r := &Router{
		logger: logger,
		core:   NewCoreHandler(client, cfg.Buckets.SafeMode, logger),
	}
	r.tools = append(r.tools, coreTools...)

	if cfg.Buckets.PublicAPI {
		r.public = NewPublicHandler(chatwoot.NewPublicClient(cfg.Chatwoot.BaseURL, logger), logger)
		r.tools = append(r.tools, publicTools...)
		logger.Info("public api bucket enabled", "tools", len(publicTools))
	}

	if cfg.Buckets.PlatformAPI {
		if cfg.Platform.APIToken != "" {
			platformClient := chatwoot.NewPlatformClient(cfg.Chatwoot.BaseURL, cfg.Platform.APIToken, logger)
			r.platform = NewPlatformHandler(platformClient, cfg.Buckets.PlatformSafeMode, logger)
			r.tools = append(r.tools, platformTools...)
			logger.Info("platform api bucket enabled", "tools", len(platformTools), "safe_mode", cfg.Buckets.PlatformSafeMode)
		} else {
			logger.Warn("MCP_ENABLE_PLATFORM_API=true but CHATWOOT_PLATFORM_API_TOKEN is not set; platform bucket disabled")
		}
	}

	if cfg.Buckets.Enterprise {
		r.enterprise = NewEnterpriseHandler(client, cfg.Buckets.SafeMode, logger)
		r.tools = append(r.tools, enterpriseTools...)
		logger.Info("enterprise bucket enabled", "tools", len(enterpriseTools))
	}

	if cfg.Buckets.HelpCenter {
		r.helpCenter = NewHelpCenterHandler(client, cfg.Buckets.SafeMode, logger)
		r.tools = append(r.tools, helpCenterTools...)
		logger.Info("help center bucket enabled", "tools", len(helpCenterTools))
	}

	seen := make(map[string]struct{}, len(r.tools))
	for _, d := range r.tools {
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q in catalog", d.Name)
		}
		seen[d.Name] = struct{}{}
	}

	return r, nil
}

// Tools returns the advertised catalog for the enabled buckets.
func (r *Router) Tools() []Descriptor {
	return r.tools
}

// Len reports the number of advertised tools.
func (r *Router) Len() int {
	return len(r.tools)
}

// Call routes one tool call to its bucket handler. A handler panic is
// contained here and surfaces as a tool-level error result.
func (r *Router) Call(ctx context.Context, name string, args Args) (result Result) {
	if args == nil {
		args = Args{}
	}
	r.logger.Info("tool call", "tool", name)

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tool handler panic", "tool", name, "panic", rec)
			result = ErrorText(fmt.Sprintf("Error: internal failure while handling %s", name))
		}
	}()

	if _, ok := publicToolNames[name]; ok {
		if r.public == nil {
			return ErrorText("Public API bucket is not enabled. Set MCP_ENABLE_PUBLIC_API=true.")
		}
		return r.public.Handle(ctx, name, args)
	}

	if _, ok := platformToolNames[name]; ok {
		if r.platform == nil {
			return ErrorText("Platform API bucket is not enabled. Set MCP_ENABLE_PLATFORM_API=true and CHATWOOT_PLATFORM_API_TOKEN.")
		}
		return r.platform.Handle(ctx, name, args)
	}

	if _, ok := enterpriseToolNames[name]; ok {
		if r.enterprise == nil {
			return ErrorText("Enterprise bucket is not enabled. Set MCP_ENABLE_ENTERPRISE=true.")
		}
		return r.enterprise.Handle(ctx, name, args)
	}

	if _, ok := helpCenterToolNames[name]; ok {
		if r.helpCenter == nil {
			return ErrorText("Help Center bucket is not enabled. Set MCP_ENABLE_HELP_CENTER=true.")
		}
		return r.helpCenter.Handle(ctx, name, args)
	}

	return r.core.Handle(ctx, name, args)
}
