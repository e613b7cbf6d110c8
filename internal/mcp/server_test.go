// ABOUTME: Tests for the MCP transports: sessions, auth, CORS, and JSON-RPC flow
// ABOUTME: Drives a real HTTP server against a fake Chatwoot backend

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvplus/chatwoot-mcp/internal/config"
	"github.com/tvplus/chatwoot-mcp/internal/tools"
)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

func newTestServer(t *testing.T, authToken string) *Server {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		Chatwoot: config.ChatwootConfig{BaseURL: backend.URL, AccountID: 1, APIToken: "token"},
		Buckets:  config.BucketConfig{PlatformSafeMode: true},
	}
	router, err := tools.NewRouter(cfg, testLogger())
	require.NoError(t, err)

	srv, err := NewServer(Config{Router: router, Logger: testLogger(), AuthToken: authToken})
	require.NoError(t, err)
	return srv
}

func rpcBody(t *testing.T, id any, method string, params any) *bytes.Reader {
	t.Helper()
	msg := map[string]any{"jsonrpc": "2.0", "method": method}
	if id != nil {
		msg["id"] = id
	}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func postMCP(t *testing.T, ts *httptest.Server, sessionID string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/mcp", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("Mcp-Session-Id", sessionID)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func initSession(t *testing.T, ts *httptest.Server, sessionID string) {
	t.Helper()
	resp := postMCP(t, ts, sessionID, rpcBody(t, 1, "initialize", nil))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func sessionConn(t *testing.T, srv *Server, sessionID string) *serverConn {
	t.Helper()
	srv.sessions.mu.Lock()
	defer srv.sessions.mu.Unlock()
	sess, ok := srv.sessions.sessions[sessionID]
	require.True(t, ok, "session %s not found", sessionID)
	return sess.conn
}

func newTestStore() *sessionStore {
	return newSessionStore(testLogger(), func() *serverConn {
		return newServerConn(nil, testLogger())
	})
}

func decodeRPC(t *testing.T, resp *http.Response) JSONRPCResponse {
	t.Helper()
	defer resp.Body.Close()
	var out JSONRPCResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, ServerName, body["server"])
	assert.Equal(t, ServerVersion, body["version"])
	assert.Equal(t, float64(0), body["activeSessions"])
	assert.Equal(t, float64(srv.router.Len()), body["tools"])
}

func TestHealthSkipsAuth(t *testing.T) {
	srv := newTestServer(t, "secret")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMissingToken(t *testing.T) {
	srv := newTestServer(t, "secret")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "", rpcBody(t, 1, "initialize", nil))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Missing Bearer token", body["error"])
}

func TestAuthInvalidToken(t *testing.T) {
	srv := newTestServer(t, "secret")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/mcp", rpcBody(t, 1, "initialize", nil))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid token", body["error"])
}

func TestAuthValidToken(t *testing.T) {
	srv := newTestServer(t, "secret")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/mcp", rpcBody(t, 1, "ping", nil))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer secret")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/mcp", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, Accept, Mcp-Session-Id", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "Mcp-Session-Id", resp.Header.Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "86400", resp.Header.Get("Access-Control-Max-Age"))
}

func TestInitializeCreatesSession(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "", rpcBody(t, 1, "initialize", map[string]any{"protocolVersion": "2025-03-26"}))
	sessionID := resp.Header.Get("Mcp-Session-Id")
	assert.NotEmpty(t, sessionID)

	out := decodeRPC(t, resp)
	require.Nil(t, out.Error)
	result := out.Result.(map[string]any)
	assert.Equal(t, "2025-03-26", result["protocolVersion"])
	serverInfo := result["serverInfo"].(map[string]any)
	assert.Equal(t, ServerName, serverInfo["name"])
	assert.Equal(t, ServerVersion, serverInfo["version"])

	assert.Equal(t, 1, srv.ActiveSessions())
}

func TestInitializeFallsBackToLatestVersion(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "", rpcBody(t, 1, "initialize", map[string]any{"protocolVersion": "1999-01-01"}))
	out := decodeRPC(t, resp)
	require.Nil(t, out.Error)
	assert.Equal(t, latestProtocolVersion, out.Result.(map[string]any)["protocolVersion"])
}

func TestPostReusesProvidedSessionID(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "client-chosen", rpcBody(t, 1, "initialize", nil))
	assert.Equal(t, "client-chosen", resp.Header.Get("Mcp-Session-Id"))
	resp.Body.Close()

	resp = postMCP(t, ts, "client-chosen", rpcBody(t, 2, "ping", nil))
	assert.Equal(t, "client-chosen", resp.Header.Get("Mcp-Session-Id"))
	resp.Body.Close()

	assert.Equal(t, 1, srv.ActiveSessions())
}

func TestPostRejectsWrongContentType(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/mcp", strings.NewReader("hello"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestPostParseError(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "", strings.NewReader("{not json"))
	out := decodeRPC(t, resp)
	require.NotNil(t, out.Error)
	assert.Equal(t, JSONRPCParseError, out.Error.Code)
}

func TestNotificationAccepted(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "", rpcBody(t, nil, "notifications/initialized", nil))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestToolsListOverHTTP(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	initSession(t, ts, "list-sess")
	resp := postMCP(t, ts, "list-sess", rpcBody(t, 2, "tools/list", nil))
	out := decodeRPC(t, resp)
	require.Nil(t, out.Error)

	result := out.Result.(map[string]any)
	listed := result["tools"].([]any)
	assert.Len(t, listed, srv.router.Len())

	first := listed[0].(map[string]any)
	assert.NotEmpty(t, first["name"])
	assert.NotEmpty(t, first["description"])
	assert.Contains(t, first["inputSchema"].(map[string]any), "type")
}

func TestToolsCallOverHTTP(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	initSession(t, ts, "call-sess")
	resp := postMCP(t, ts, "call-sess", rpcBody(t, 2, "tools/call", map[string]any{
		"name":      "list_agents",
		"arguments": map[string]any{},
	}))
	out := decodeRPC(t, resp)
	require.Nil(t, out.Error)

	result := out.Result.(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	assert.Equal(t, "text", block["type"])
	assert.Contains(t, block["text"], `"ok": true`)
	assert.Nil(t, result["isError"])
}

func TestToolsCallErrorResult(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// Unknown tools surface as tool-level errors, not JSON-RPC errors.
	initSession(t, ts, "bogus-sess")
	resp := postMCP(t, ts, "bogus-sess", rpcBody(t, 2, "tools/call", map[string]any{"name": "bogus"}))
	out := decodeRPC(t, resp)
	require.Nil(t, out.Error)

	result := out.Result.(map[string]any)
	assert.Equal(t, true, result["isError"])
	block := result["content"].([]any)[0].(map[string]any)
	assert.Equal(t, "Unknown tool: bogus", block["text"])
}

func TestToolsCallRequiresName(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	initSession(t, ts, "noname-sess")
	resp := postMCP(t, ts, "noname-sess", rpcBody(t, 2, "tools/call", map[string]any{}))
	out := decodeRPC(t, resp)
	require.NotNil(t, out.Error)
	assert.Equal(t, JSONRPCInvalidParams, out.Error.Code)
}

func TestMethodNotFound(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	initSession(t, ts, "method-sess")
	resp := postMCP(t, ts, "method-sess", rpcBody(t, 2, "resources/list", nil))
	out := decodeRPC(t, resp)
	require.NotNil(t, out.Error)
	assert.Equal(t, JSONRPCMethodNotFound, out.Error.Code)
}

func TestDeleteIsIdempotent(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "sess-1", rpcBody(t, 1, "initialize", nil))
	resp.Body.Close()
	require.Equal(t, 1, srv.ActiveSessions())

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/mcp", nil)
		require.NoError(t, err)
		req.Header.Set("Mcp-Session-Id", "sess-1")
		resp, err := ts.Client().Do(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]bool
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.True(t, body["ok"])
	}
	assert.Equal(t, 0, srv.ActiveSessions())
}

func TestGetWithoutSession(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/mcp")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No active session. Send POST /mcp first.", body["error"])
}

func TestGetOpensSSEStream(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "sse-sess", rpcBody(t, 1, "initialize", nil))
	resp.Body.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/mcp", nil)
	require.NoError(t, err)
	req.Header.Set("Mcp-Session-Id", "sse-sess")

	get, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer get.Body.Close()

	assert.Equal(t, http.StatusOK, get.StatusCode)
	assert.Equal(t, "text/event-stream", get.Header.Get("Content-Type"))
	cancel()
}

func TestGetRejectsWrongAccept(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "accept-sess", rpcBody(t, 1, "initialize", nil))
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/mcp", nil)
	require.NoError(t, err)
	req.Header.Set("Mcp-Session-Id", "accept-sess")
	req.Header.Set("Accept", "application/json")

	get, err := ts.Client().Do(req)
	require.NoError(t, err)
	get.Body.Close()
	assert.Equal(t, http.StatusNotAcceptable, get.StatusCode)
}

func TestSessionSweepExpiresIdleSessions(t *testing.T) {
	store := newTestStore()
	store.getOrCreate("fresh")
	stale, _ := store.getOrCreate("stale")

	store.mu.Lock()
	store.sessions["stale"].lastActivity = time.Now().Add(-sessionTimeout - time.Second)
	store.mu.Unlock()

	swept := store.sweepOnce(time.Now())
	assert.Equal(t, 1, swept)
	assert.True(t, store.exists("fresh"))
	assert.False(t, store.exists("stale"))

	// The sweep closed the expired conn.
	assert.ErrorIs(t, stale.conn.Close(), errConnClosed)
}

func TestSessionTouchDefersSweep(t *testing.T) {
	store := newTestStore()
	store.getOrCreate("busy")

	store.mu.Lock()
	store.sessions["busy"].lastActivity = time.Now().Add(-sessionTimeout - time.Second)
	store.mu.Unlock()

	require.True(t, store.touch("busy"))
	assert.Zero(t, store.sweepOnce(time.Now()))
	assert.True(t, store.exists("busy"))
}

func TestSessionCloseAll(t *testing.T) {
	store := newTestStore()
	a, _ := store.getOrCreate("a")
	b, _ := store.getOrCreate("b")
	require.Equal(t, 2, store.count())

	store.closeAll()
	assert.Zero(t, store.count())
	assert.ErrorIs(t, a.conn.Close(), errConnClosed)
	assert.ErrorIs(t, b.conn.Close(), errConnClosed)
}

func TestConnCloseIsIdempotent(t *testing.T) {
	conn := newServerConn(nil, testLogger())
	require.NoError(t, conn.Close())
	assert.ErrorIs(t, conn.Close(), errConnClosed)
}

func TestUninitializedSessionRejectsRequests(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// A brand-new session has not completed the handshake, so tool requests
	// are rejected until initialize runs on that session.
	for _, method := range []string{"tools/list", "tools/call"} {
		resp := postMCP(t, ts, "cold-sess", rpcBody(t, 1, method, map[string]any{"name": "list_agents"}))
		out := decodeRPC(t, resp)
		require.NotNil(t, out.Error, method)
		assert.Equal(t, JSONRPCInvalidRequest, out.Error.Code, method)
		assert.Equal(t, "server not initialized", out.Error.Message, method)
	}

	// ping is allowed pre-handshake.
	resp := postMCP(t, ts, "cold-sess", rpcBody(t, 2, "ping", nil))
	out := decodeRPC(t, resp)
	assert.Nil(t, out.Error)

	// Handshake state is per session: initializing one session does not
	// open another.
	initSession(t, ts, "warm-sess")
	resp = postMCP(t, ts, "cold-sess", rpcBody(t, 3, "tools/list", nil))
	out = decodeRPC(t, resp)
	require.NotNil(t, out.Error)
	assert.Equal(t, JSONRPCInvalidRequest, out.Error.Code)
}

func TestInitializeBindsConnState(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postMCP(t, ts, "bind-sess", rpcBody(t, 1, "initialize", map[string]any{"protocolVersion": "2024-11-05"}))
	resp.Body.Close()

	conn := sessionConn(t, srv, "bind-sess")
	assert.True(t, conn.isInitialized())
	assert.Equal(t, "2024-11-05", conn.negotiatedVersion())
}

func TestDeleteClosesConnExactlyOnce(t *testing.T) {
	srv := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	initSession(t, ts, "teardown-sess")
	conn := sessionConn(t, srv, "teardown-sess")

	doDelete := func() map[string]bool {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/mcp", nil)
		require.NoError(t, err)
		req.Header.Set("Mcp-Session-Id", "teardown-sess")
		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]bool
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	assert.True(t, doDelete()["ok"])
	// The conn was closed during teardown; a further Close reports the
	// double close, proving the DELETE path consumed the single real one.
	assert.ErrorIs(t, conn.Close(), errConnClosed)

	// A repeat DELETE finds no session and touches no conn, but still
	// reports ok.
	assert.True(t, doDelete()["ok"])
	assert.Equal(t, 0, srv.ActiveSessions())
}

func TestStdioRoundTrip(t *testing.T) {
	srv := newTestServer(t, "")

	var in bytes.Buffer
	in.WriteString(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26"}}` + "\n")
	in.WriteString(`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n")
	in.WriteString(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n")

	var out bytes.Buffer
	require.NoError(t, srv.serveStdio(context.Background(), &in, &out))

	dec := json.NewDecoder(&out)

	var first JSONRPCResponse
	require.NoError(t, dec.Decode(&first))
	require.Nil(t, first.Error)
	assert.Equal(t, "1", string(first.ID))

	var second JSONRPCResponse
	require.NoError(t, dec.Decode(&second))
	require.Nil(t, second.Error)
	assert.Equal(t, "2", string(second.ID))

	// Notification produced no third response.
	assert.False(t, dec.More())
}

func TestStdioParseError(t *testing.T) {
	srv := newTestServer(t, "")

	in := strings.NewReader("not json\n")
	var out bytes.Buffer
	require.NoError(t, srv.serveStdio(context.Background(), in, &out))

	var resp JSONRPCResponse
	require.NoError(t, json.NewDecoder(&out).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, JSONRPCParseError, resp.Error.Code)
}
