// Package mcp implements the Model Context Protocol server surface.
//
// # Overview
//
// MCP (Model Context Protocol) is a standard for AI tool integration. This
// package exposes the tool catalog to external AI clients (Claude Desktop,
// other LLMs, or custom applications) over two transports:
//
//   - Streamable HTTP: POST/GET/DELETE on a single /mcp endpoint with
//     session tracking via the Mcp-Session-Id header
//   - stdio: newline-delimited JSON-RPC over stdin/stdout for clients that
//     spawn the server as a subprocess
//
// # Protocol
//
// Both transports speak JSON-RPC 2.0. Supported methods:
//
//   - initialize - handshake; returns server info and capabilities
//   - ping - liveness check
//   - tools/list - tool discovery with JSON Schema input definitions
//   - tools/call - tool execution; results carry text content blocks
//
// Notifications (requests without an id) are accepted and discarded with
// HTTP 202 on the HTTP transport.
//
// # Sessions
//
// The HTTP transport keys sessions on the Mcp-Session-Id header. A POST
// without a known session id creates one; the assigned id is echoed back in
// the response headers. Idle sessions are swept after five minutes. DELETE
// terminates a session and is idempotent.
//
// # Authentication
//
// When an auth token is configured, /mcp requires a matching bearer token:
//
//	Authorization: Bearer <token>
//
// /health stays open so load balancers can probe without credentials.
package mcp
