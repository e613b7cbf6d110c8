// ABOUTME: Per-session JSON-RPC dispatch for the MCP methods
// ABOUTME: Each session binds a serverConn holding handshake state and a close hook

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/tvplus/chatwoot-mcp/internal/tools"
)

// Config holds configuration for the MCP server.
type Config struct {
	Router    *tools.Router
	Logger    *slog.Logger
	AuthToken string // optional bearer token for the HTTP transport
}

// Server owns the shared tool router and the HTTP session registry. Each
// session (and the stdio stream) gets its own serverConn for protocol state.
type Server struct {
	router    *tools.Router
	logger    *slog.Logger
	authToken string
	sessions  *sessionStore
}

// NewServer creates a new MCP server with the given configuration.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Router == nil {
		return nil, errors.New("router is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:    cfg.Router,
		logger:    logger,
		authToken: cfg.AuthToken,
	}
	s.sessions = newSessionStore(logger, s.newConn)
	return s, nil
}

// ActiveSessions reports the number of live HTTP sessions.
func (s *Server) ActiveSessions() int {
	return s.sessions.count()
}

func (s *Server) newConn() *serverConn {
	return newServerConn(s.router, s.logger)
}

// errConnClosed reports a close on an already-closed conn. Session teardown
// paths treat it as a best-effort warning, never a failure.
var errConnClosed = errors.New("connection already closed")

// serverConn is the protocol-server instance bound to one session (or to the
// whole stdio stream). It tracks the handshake: requests other than
// initialize and ping are rejected until the client has initialized.
type serverConn struct {
	router *tools.Router
	logger *slog.Logger

	mu              sync.Mutex
	initialized     bool
	protocolVersion string
	closed          bool
}

func newServerConn(router *tools.Router, logger *slog.Logger) *serverConn {
	if logger == nil {
		logger = slog.Default()
	}
	return &serverConn{router: router, logger: logger}
}

// Close tears down the conn. The first call wins; later calls report
// errConnClosed so callers can tell a double close from a live one.
func (c *serverConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errConnClosed
	}
	c.closed = true
	return nil
}

func (c *serverConn) isInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// negotiatedVersion returns the protocol version agreed at initialize, or ""
// before the handshake.
func (c *serverConn) negotiatedVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.protocolVersion
}

// handle processes one JSON-RPC request and returns the response, or nil for
// notifications.
func (c *serverConn) handle(ctx context.Context, req JSONRPCRequest) *JSONRPCResponse {
	if req.JSONRPC != "2.0" {
		return newError(req.ID, JSONRPCInvalidRequest, "invalid JSON-RPC version")
	}

	if req.IsNotification() {
		c.logger.Debug("notification accepted", "method", req.Method)
		return nil
	}

	// initialize and ping are the only requests allowed pre-handshake.
	switch req.Method {
	case "initialize":
		return c.handleInitialize(req)
	case "ping":
		return newResult(req.ID, map[string]any{})
	}

	if !c.isInitialized() {
		return newError(req.ID, JSONRPCInvalidRequest, "server not initialized")
	}

	switch req.Method {
	case "tools/list":
		return c.handleToolsList(req)
	case "tools/call":
		return c.handleToolsCall(ctx, req)
	default:
		return newError(req.ID, JSONRPCMethodNotFound, "method not found")
	}
}

// handleInitialize answers the MCP handshake. The negotiated protocol version
// is the client's when we support it, otherwise our latest.
func (c *serverConn) handleInitialize(req JSONRPCRequest) *JSONRPCResponse {
	var params MCPInitializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return newError(req.ID, JSONRPCInvalidParams, "invalid params")
		}
	}

	version := latestProtocolVersion
	if supportedProtocolVersions[params.ProtocolVersion] {
		version = params.ProtocolVersion
	}

	c.mu.Lock()
	c.initialized = true
	c.protocolVersion = version
	c.mu.Unlock()

	c.logger.Info("initialize", "protocol_version", version, "tools", c.router.Len())

	return newResult(req.ID, map[string]any{
		"protocolVersion": version,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": ServerVersion,
		},
	})
}

func (c *serverConn) handleToolsList(req JSONRPCRequest) *JSONRPCResponse {
	catalog := c.router.Tools()
	c.logger.Debug("tools/list", "count", len(catalog))
	return newResult(req.ID, MCPListToolsResult{Tools: catalog})
}

func (c *serverConn) handleToolsCall(ctx context.Context, req JSONRPCRequest) *JSONRPCResponse {
	var params MCPCallToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return newError(req.ID, JSONRPCInvalidParams, "invalid params")
		}
	}

	if params.Name == "" {
		return newError(req.ID, JSONRPCInvalidParams, "tool name is required")
	}

	args := tools.Args{}
	if len(params.Arguments) > 0 && string(params.Arguments) != "null" {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return newError(req.ID, JSONRPCInvalidParams, "arguments must be an object")
		}
	}

	result := c.router.Call(ctx, params.Name, args)

	c.logger.Debug("tools/call complete", "tool", params.Name, "is_error", result.IsError)
	return newResult(req.ID, result)
}
