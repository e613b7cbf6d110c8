// ABOUTME: Tool call result types and the constructors all handlers share
// ABOUTME: Results always carry text content; backend payloads are pretty-printed JSON

package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tvplus/chatwoot-mcp/internal/chatwoot"
)

// Content is a single content block in a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the outcome of a tool call. IsError marks tool-level failures
// (backend errors, safe-mode blocks, unknown tools); protocol-level errors
// are not represented here.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// TextResult wraps a plain text message as a successful result.
func TextResult(text string) Result {
	return Result{Content: []Content{{Type: "text", Text: text}}}
}

// ErrorText wraps a plain text message as a failed result.
func ErrorText(text string) Result {
	return Result{Content: []Content{{Type: "text", Text: text}}, IsError: true}
}

// JSONResult renders data as indented JSON text.
func JSONResult(data any) Result {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ErrorText(fmt.Sprintf("Error: %s", err))
	}
	return TextResult(string(encoded))
}

// ErrorResult converts an error into a failed result. Backend failures keep
// their normalized "<API> Error (<status>): <message>" form; everything else
// gets a generic prefix.
func ErrorResult(err error) Result {
	var apiErr *chatwoot.APIError
	if errors.As(err, &apiErr) {
		return ErrorText(apiErr.Error())
	}
	return ErrorText(fmt.Sprintf("Error: %s", err))
}
