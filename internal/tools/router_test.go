// ABOUTME: Tests for bucket routing, catalog composition, and safe-mode gates
// ABOUTME: Uses a counting httptest backend to prove blocked calls never hit it

package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvplus/chatwoot-mcp/internal/config"
)

type countingBackend struct {
	srv   *httptest.Server
	calls atomic.Int64
}

func newCountingBackend(t *testing.T) *countingBackend {
	t.Helper()
	b := &countingBackend{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Chatwoot: config.ChatwootConfig{
			BaseURL:   baseURL,
			AccountID: 1,
			APIToken:  "token",
		},
		Buckets: config.BucketConfig{PlatformSafeMode: true},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *Router {
	t.Helper()
	router, err := NewRouter(cfg, slog.New(slog.NewTextHandler(discardWriter{}, nil)))
	require.NoError(t, err)
	return router
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func resultText(t *testing.T, res Result) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].Text
}

func TestCatalogCoreOnly(t *testing.T) {
	backend := newCountingBackend(t)
	router := newTestRouter(t, testConfig(backend.srv.URL))

	assert.Equal(t, len(coreTools), router.Len())
	for _, d := range router.Tools() {
		assert.NotContains(t, publicToolNames, d.Name)
		assert.NotContains(t, platformToolNames, d.Name)
	}
}

func TestCatalogAllBuckets(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.PublicAPI = true
	cfg.Buckets.PlatformAPI = true
	cfg.Buckets.Enterprise = true
	cfg.Buckets.HelpCenter = true
	cfg.Platform.APIToken = "master"

	router := newTestRouter(t, cfg)
	want := len(coreTools) + len(publicTools) + len(platformTools) + len(enterpriseTools) + len(helpCenterTools)
	assert.Equal(t, want, router.Len())
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, bucket := range [][]Descriptor{coreTools, publicTools, platformTools, enterpriseTools, helpCenterTools} {
		for _, d := range bucket {
			_, dup := seen[d.Name]
			require.False(t, dup, "duplicate tool name %s", d.Name)
			seen[d.Name] = struct{}{}
		}
	}
}

func TestCatalogSchemasAreValidJSON(t *testing.T) {
	for _, bucket := range [][]Descriptor{coreTools, publicTools, platformTools, enterpriseTools, helpCenterTools} {
		for _, d := range bucket {
			var decoded map[string]any
			require.NoError(t, json.Unmarshal(d.InputSchema, &decoded), "schema of %s", d.Name)
			assert.Equal(t, "object", decoded["type"], "schema of %s", d.Name)
		}
	}
}

func TestDestructiveSetsMatchCatalogs(t *testing.T) {
	core := nameSet(coreTools)
	for name := range coreDestructive {
		assert.Contains(t, core, name)
	}
	platform := nameSet(platformTools)
	for name := range platformWrites {
		assert.Contains(t, platform, name)
	}
	enterprise := nameSet(enterpriseTools)
	for name := range enterpriseDestructive {
		assert.Contains(t, enterprise, name)
	}
	helpCenter := nameSet(helpCenterTools)
	for name := range helpCenterDestructive {
		assert.Contains(t, helpCenter, name)
	}
}

func TestPlatformBucketNotAdvertisedWithoutToken(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.PlatformAPI = true

	router := newTestRouter(t, cfg)
	assert.Equal(t, len(coreTools), router.Len())

	res := router.Call(context.Background(), "platform_get_account", Args{"account_id": float64(1)})
	assert.True(t, res.IsError)
	assert.Equal(t, "Platform API bucket is not enabled. Set MCP_ENABLE_PLATFORM_API=true and CHATWOOT_PLATFORM_API_TOKEN.", resultText(t, res))
	assert.Zero(t, backend.calls.Load())
}

func TestDisabledBucketErrors(t *testing.T) {
	backend := newCountingBackend(t)
	router := newTestRouter(t, testConfig(backend.srv.URL))

	cases := map[string]string{
		"public_get_contact":         "Public API bucket is not enabled. Set MCP_ENABLE_PUBLIC_API=true.",
		"enterprise_list_audit_logs": "Enterprise bucket is not enabled. Set MCP_ENABLE_ENTERPRISE=true.",
		"helpcenter_list_portals":    "Help Center bucket is not enabled. Set MCP_ENABLE_HELP_CENTER=true.",
	}
	for tool, want := range cases {
		res := router.Call(context.Background(), tool, Args{})
		assert.True(t, res.IsError, tool)
		assert.Equal(t, want, resultText(t, res), tool)
	}
	assert.Zero(t, backend.calls.Load(), "disabled buckets must not reach the backend")
}

func TestUnknownToolFallsThroughToCore(t *testing.T) {
	backend := newCountingBackend(t)
	router := newTestRouter(t, testConfig(backend.srv.URL))

	res := router.Call(context.Background(), "no_such_tool", Args{})
	assert.True(t, res.IsError)
	assert.Equal(t, "Unknown tool: no_such_tool", resultText(t, res))
	assert.Zero(t, backend.calls.Load())
}

func TestSafeModeBlocksDestructiveWithoutBackendCall(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.SafeMode = true
	router := newTestRouter(t, cfg)

	res := router.Call(context.Background(), "delete_contact", Args{"contact_id": float64(5)})
	assert.True(t, res.IsError)
	assert.Equal(t, `Blocked by MCP_SAFE_MODE: "delete_contact" is a destructive operation. Set MCP_SAFE_MODE=false or remove it to use this tool.`, resultText(t, res))
	assert.Zero(t, backend.calls.Load())

	// Read path stays open.
	res = router.Call(context.Background(), "list_agents", Args{})
	assert.False(t, res.IsError)
	assert.Equal(t, int64(1), backend.calls.Load())
}

func TestSafeModeOffAllowsDestructive(t *testing.T) {
	backend := newCountingBackend(t)
	router := newTestRouter(t, testConfig(backend.srv.URL))

	res := router.Call(context.Background(), "delete_label", Args{"label_id": float64(2)})
	assert.False(t, res.IsError)
	assert.Equal(t, "Label deleted successfully.", resultText(t, res))
	assert.Equal(t, int64(1), backend.calls.Load())
}

func TestPlatformSafeModeDefaultBlocksWrites(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.PlatformAPI = true
	cfg.Platform.APIToken = "master"
	router := newTestRouter(t, cfg)

	res := router.Call(context.Background(), "platform_delete_user", Args{"id": float64(3)})
	assert.True(t, res.IsError)
	assert.Equal(t, `Blocked by MCP_PLATFORM_SAFE_MODE: "platform_delete_user" is a write/delete operation. Set MCP_PLATFORM_SAFE_MODE=false to use this tool.`, resultText(t, res))
	assert.Zero(t, backend.calls.Load())

	// Platform reads are never gated.
	res = router.Call(context.Background(), "platform_list_agent_bots", Args{})
	assert.False(t, res.IsError)
	assert.Equal(t, int64(1), backend.calls.Load())
}

func TestPlatformSafeModeOpenAllowsWrites(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.PlatformAPI = true
	cfg.Platform.APIToken = "master"
	cfg.Buckets.PlatformSafeMode = false
	router := newTestRouter(t, cfg)

	res := router.Call(context.Background(), "platform_create_account", Args{"name": "acme"})
	assert.False(t, res.IsError)
	assert.Equal(t, int64(1), backend.calls.Load())
}

func TestEnterpriseSafeModeMessage(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.Enterprise = true
	cfg.Buckets.SafeMode = true
	router := newTestRouter(t, cfg)

	res := router.Call(context.Background(), "enterprise_delete_agent_bot", Args{"bot_id": float64(1)})
	assert.True(t, res.IsError)
	assert.Equal(t, `Blocked by MCP_SAFE_MODE: "enterprise_delete_agent_bot" is a destructive operation. Set MCP_SAFE_MODE=false to use this tool.`, resultText(t, res))
	assert.Zero(t, backend.calls.Load())
}

func TestHelpCenterSafeModeMessage(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.HelpCenter = true
	cfg.Buckets.SafeMode = true
	router := newTestRouter(t, cfg)

	res := router.Call(context.Background(), "helpcenter_delete_portal", Args{"portal_id": "docs"})
	assert.True(t, res.IsError)
	assert.Equal(t, `Blocked by MCP_SAFE_MODE: "helpcenter_delete_portal" is a destructive operation. Set MCP_SAFE_MODE=false to use this tool.`, resultText(t, res))
	assert.Zero(t, backend.calls.Load())
}

func TestUnknownBucketToolMessages(t *testing.T) {
	backend := newCountingBackend(t)
	cfg := testConfig(backend.srv.URL)
	cfg.Buckets.PublicAPI = true
	router := newTestRouter(t, cfg)

	// A name inside a bucket's set always dispatches to that bucket, so the
	// per-bucket unknown default is only reachable via direct handler calls.
	res := router.public.Handle(context.Background(), "public_bogus", Args{})
	assert.Equal(t, "Unknown public tool: public_bogus", resultText(t, res))
}

func TestBackendErrorSurfacesInResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "Contact not found"})
	}))
	t.Cleanup(srv.Close)

	router := newTestRouter(t, testConfig(srv.URL))
	res := router.Call(context.Background(), "get_contact", Args{"contact_id": float64(404)})
	assert.True(t, res.IsError)
	assert.Equal(t, "Chatwoot API Error (404): Contact not found", resultText(t, res))
}

func TestAccountOverrideFlowsThroughRouter(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]any{})
	}))
	t.Cleanup(srv.Close)

	router := newTestRouter(t, testConfig(srv.URL))
	res := router.Call(context.Background(), "list_agents", Args{"account_id": float64(42)})
	assert.False(t, res.IsError)
	assert.Equal(t, "/api/v1/accounts/42/agents", gotPath)
}

func TestJSONResultIndents(t *testing.T) {
	res := JSONResult(map[string]any{"id": 1})
	assert.Equal(t, "{\n  \"id\": 1\n}", resultText(t, res))
	assert.False(t, res.IsError)
}
