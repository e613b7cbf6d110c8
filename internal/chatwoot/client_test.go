// ABOUTME: Tests for the three Chatwoot clients using httptest backends
// ABOUTME: Covers account override routing, auth headers, and error normalization

package chatwoot

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvplus/chatwoot-mcp/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, accountID int) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(config.ChatwootConfig{
		BaseURL:   srv.URL,
		AccountID: accountID,
		APIToken:  "test-token",
	}, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	return client, srv
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestClientUsesDefaultAccount(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]any{})
	}, 7)

	_, err := client.ListAgents(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/accounts/7/agents", gotPath)
}

func TestClientAccountOverride(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{})
	}, 7)

	_, err := client.ListAgents(context.Background(), 42)
	require.NoError(t, err)

	_, err = client.GetAccountReport(context.Background(), map[string]any{"metric": "conversations_count"}, 42)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/api/v1/accounts/42/agents", paths[0])
	assert.Equal(t, "/api/v2/accounts/42/reports", paths[1])
}

func TestClientOverrideDoesNotStick(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{})
	}, 7)

	_, err := client.ListAgents(context.Background(), 42)
	require.NoError(t, err)
	_, err = client.ListAgents(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/api/v1/accounts/42/agents", paths[0])
	assert.Equal(t, "/api/v1/accounts/7/agents", paths[1])
}

func TestClientNoAccountConfigured(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	}, 0)

	_, err := client.ListAgents(context.Background(), 0)
	assert.ErrorIs(t, err, ErrAccountRequired)

	_, err = client.GetAccountReport(context.Background(), nil, 0)
	assert.ErrorIs(t, err, ErrAccountRequired)
}

func TestClientSendsAccessToken(t *testing.T) {
	var gotToken string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("api_access_token")
		json.NewEncoder(w).Encode(map[string]any{})
	}, 1)

	_, err := client.GetProfile(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "test-token", gotToken)
}

func TestErrorNormalizationMessageField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "Contact not found"})
	}, 1)

	_, err := client.GetContact(context.Background(), 999, 0)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Contact not found", apiErr.Message)
	assert.Equal(t, "Chatwoot API Error (404): Contact not found", apiErr.Error())
}

func TestErrorNormalizationErrorField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"error": "Access denied"})
	}, 1)

	_, err := client.DeleteContact(context.Background(), 1, 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "Access denied", apiErr.Message)
}

func TestErrorNormalizationMessageWinsOverError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"message": "Name is required", "error": "validation failed"})
	}, 1)

	_, err := client.CreateContact(context.Background(), map[string]any{}, 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Name is required", apiErr.Message)
}

func TestErrorNormalizationEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 1)

	_, err := client.ListAgents(context.Background(), 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestTransportErrorIs500(t *testing.T) {
	client := NewClient(config.ChatwootConfig{
		BaseURL:   "http://127.0.0.1:1",
		AccountID: 1,
		APIToken:  "x",
	}, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	_, err := client.ListAgents(context.Background(), 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestSendMessageDefaults(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}, 1)

	_, err := client.SendMessage(context.Background(), 5, "hello", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", gotBody["content"])
	assert.Equal(t, "outgoing", gotBody["message_type"])
	assert.Equal(t, false, gotBody["private"])
	assert.Equal(t, "text", gotBody["content_type"])
}

func TestSendMessageOptionsOverrideDefaults(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}, 1)

	_, err := client.SendMessage(context.Background(), 5, "internal note", map[string]any{"private": true}, 0)
	require.NoError(t, err)
	assert.Equal(t, true, gotBody["private"])
	assert.Equal(t, "outgoing", gotBody["message_type"])
}

func TestAddLabelsToConversationMergesExisting(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"labels": []string{"billing", "urgent"}})
		case r.Method == http.MethodPost:
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]any{"payload": []string{}})
		}
	}, 1)

	_, err := client.AddLabelsToConversation(context.Background(), 3, []string{"urgent", "vip"}, 0)
	require.NoError(t, err)

	labels, ok := gotBody["labels"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"billing", "urgent", "vip"}, labels)
}

func TestQueryValuesSkipsEmpty(t *testing.T) {
	q := queryValues(map[string]any{
		"status":   "open",
		"assignee": "",
		"page":     2,
		"labels":   []string{"a", "b"},
		"nothing":  nil,
	})
	assert.Equal(t, "open", q.Get("status"))
	assert.Empty(t, q.Get("assignee"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, []string{"a", "b"}, q["labels[]"])
	assert.NotContains(t, q, "nothing")
}

func TestPublicClientPathsAndNoAuth(t *testing.T) {
	var gotPath, gotToken, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("api_access_token")
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	t.Cleanup(srv.Close)

	pc := NewPublicClient(srv.URL, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	_, err := pc.ListConversations(context.Background(), "inbox-abc", "contact-1")
	require.NoError(t, err)
	assert.Equal(t, "/public/api/v1/inboxes/inbox-abc/conversations", gotPath)
	assert.Equal(t, "contact_identifier=contact-1", gotQuery)
	assert.Empty(t, gotToken)

	_, err = pc.CreateMessage(context.Background(), "inbox-abc", 9, map[string]any{"content": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "/public/api/v1/inboxes/inbox-abc/conversations/9/messages", gotPath)
}

func TestPublicClientErrorLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "Inbox not found"})
	}))
	t.Cleanup(srv.Close)

	pc := NewPublicClient(srv.URL, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	_, err := pc.GetContact(context.Background(), "missing", "c1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Public API Error (404): Inbox not found", apiErr.Error())
}

func TestPlatformClientPathsAndToken(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("api_access_token")
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	t.Cleanup(srv.Close)

	pc := NewPlatformClient(srv.URL, "master-token", slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	_, err := pc.GetAccount(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "/platform/api/v1/accounts/12", gotPath)
	assert.Equal(t, "master-token", gotToken)

	_, err = pc.CreateAccountUser(context.Background(), 12, 34, "agent")
	require.NoError(t, err)
	assert.Equal(t, "/platform/api/v1/accounts/12/account_users", gotPath)
	assert.Equal(t, float64(34), gotBody["user_id"])
	assert.Equal(t, "agent", gotBody["role"])
}

func TestPlatformClientErrorLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "Invalid token"})
	}))
	t.Cleanup(srv.Close)

	pc := NewPlatformClient(srv.URL, "bad", slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	_, err := pc.ListAgentBots(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Platform API Error (401): Invalid token", apiErr.Error())
}

func TestEmptyResponseBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, 1)

	out, err := client.DeleteLabel(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.Nil(t, out)
}
