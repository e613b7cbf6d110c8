// Package config handles configuration loading for chatwoot-mcp.
//
// # Overview
//
// Configuration is environment-first: every option has an environment
// variable, matching how the server is deployed (container env or a
// .env-style wrapper). An optional YAML file can provide a base layer;
// environment variables always win.
//
// # Environment Variables
//
//	CHATWOOT_BASE_URL             Chatwoot installation URL (required)
//	CHATWOOT_ACCOUNT_ID           default account scope (optional)
//	CHATWOOT_API_TOKEN            agent/bot API token (required)
//	CHATWOOT_PLATFORM_API_TOKEN   platform (super admin) token
//	MCP_ENABLE_PUBLIC_API         enable the public (widget) tool bucket
//	MCP_ENABLE_PLATFORM_API       enable the platform tool bucket
//	MCP_ENABLE_ENTERPRISE         enable the enterprise tool bucket
//	MCP_ENABLE_HELP_CENTER        enable the help center tool bucket
//	MCP_SAFE_MODE                 block destructive account-scoped tools (default off)
//	MCP_PLATFORM_SAFE_MODE        block platform write tools (default ON)
//	MCP_MODE                      "stdio" or "http" (default stdio)
//	PORT                          HTTP listen port (default 3000)
//	AUTH_TOKEN                    optional bearer secret for the HTTP transport
//	LOG_LEVEL                     debug|info|warn|error (default info)
//	LOG_FORMAT                    text|json (default text)
//	MCP_CONFIG_FILE               optional YAML config file path
//
// # Config File
//
// Values in the YAML file can reference environment variables:
//
//	chatwoot:
//	  base_url: "https://support.example.com"
//	  api_token: "${CHATWOOT_API_TOKEN}"
//
// Syntax: ${VAR_NAME}
//
// # Safe Mode Polarity
//
// MCP_SAFE_MODE and MCP_PLATFORM_SAFE_MODE deliberately have opposite
// defaults. The platform token is super-admin scoped and its writes cross
// tenant boundaries, so the platform gate starts closed and must be opened
// explicitly with MCP_PLATFORM_SAFE_MODE=false.
package config
