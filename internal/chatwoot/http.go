// ABOUTME: Shared HTTP plumbing for the three Chatwoot clients
// ABOUTME: One request/decode path so error normalization lives in one place

package chatwoot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// RequestTimeout bounds every outbound backend call. Expiry surfaces as a
// transport error; there is no retry.
const RequestTimeout = 30 * time.Second

// caller issues one HTTP request against a fully-formed URL and decodes the
// response. The token header is omitted when token is empty (public API).
type caller struct {
	httpc  *http.Client
	logger *slog.Logger
	api    string
	token  string
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: RequestTimeout}
}

// do executes the request and returns the decoded JSON body (nil for empty
// responses). Non-2xx responses and transport failures return *APIError.
func (c caller) do(ctx context.Context, method, rawURL string, query url.Values, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, transportError(c.api, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, transportError(c.api, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("api_access_token", c.token)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			"api", c.api,
			"method", method,
			"url", rawURL,
			"error", err,
		)
		return nil, transportError(c.api, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(c.api, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := normalizeError(c.api, resp.StatusCode, data)
		c.logger.Error("backend error response",
			"api", c.api,
			"status", apiErr.StatusCode,
			"message", apiErr.Message,
			"method", method,
			"url", rawURL,
		)
		return nil, apiErr
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		// Some endpoints answer 200 with a non-JSON body; pass it through.
		return string(data), nil
	}
	return decoded, nil
}
