// Package tools defines the gateway's tool catalog and call routing.
//
// Tools are grouped into buckets: the always-on core bucket over the
// account-scoped Application API, plus four opt-in buckets (public,
// platform, enterprise, help center) controlled by MCP_ENABLE_* flags.
// Each bucket contributes a static descriptor list and a handler that
// dispatches calls to the matching backend client.
//
// The Router owns cross-bucket concerns: name-based routing with the
// public > platform > enterprise > help center > core precedence,
// disabled-bucket errors, and the two safe-mode gates. Safe-mode checks
// run before any backend I/O, so a blocked call never reaches Chatwoot.
package tools
