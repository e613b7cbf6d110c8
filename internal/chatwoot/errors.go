// ABOUTME: Typed error for Chatwoot API failures and the normalization rules
// ABOUTME: that map HTTP responses and transport faults onto it

package chatwoot

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// API surface labels used in error messages.
const (
	apiApplication = "Chatwoot API"
	apiPublic      = "Public API"
	apiPlatform    = "Platform API"
)

// APIError is a normalized Chatwoot backend failure. StatusCode carries the
// backend's HTTP status for application errors, or 500 for transport faults.
type APIError struct {
	API        string
	StatusCode int
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s Error (%d): %s", e.API, e.StatusCode, e.Message)
}

// normalizeError builds an APIError from a non-2xx response. The message
// prefers the body's "message" field, then its "error" field, then the
// generic status text. Pure over (status, body).
func normalizeError(api string, status int, body []byte) *APIError {
	message := http.StatusText(status)
	var details map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &details); err != nil {
			details = nil
		}
	}
	if m, ok := details["message"].(string); ok && m != "" {
		message = m
	} else if m, ok := details["error"].(string); ok && m != "" {
		message = m
	}
	return &APIError{API: api, StatusCode: status, Message: message, Details: details}
}

// transportError wraps a network-level failure as a generic 500.
func transportError(api string, err error) *APIError {
	return &APIError{API: api, StatusCode: http.StatusInternalServerError, Message: err.Error()}
}
