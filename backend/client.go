// Package backend is the access layer for the external clinical backend.
// Every logical operation maps to a single HTTP call; there is no retry and
// no timeout beyond the transport default. Errors carry the server-supplied
// message when one exists and are always returned to the caller, except for
// list fetches which degrade to an empty collection.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"ClinicaAdmin/session"
)

// Client issues requests against the clinical backend. The bearer token is
// read from the request-scoped session at call time, never cached here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client, used by tests and by
// deployments that need custom transports.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the clinical backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// do performs one request and returns the raw response body. Non-2xx
// responses become an *APIError; transport failures become a "cannot
// connect" error.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := session.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to the clinical backend: %s %s", method, path)
	}
	defer resp.Body.Close()

	log.Printf("Backend: %s %s | Status: %d | Duration: %v", method, path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp, data)
	}
	return data, nil
}

// doJSON performs a request and decodes the response into out. An empty body
// (204 and friends) leaves out untouched so callers can synthesize a success
// value instead of failing on the missing JSON.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode response for %s %s", method, path)
	}
	return nil
}

// listAll fetches `{resource}/all` and fills out with the normalized array.
// List failures degrade to "nothing to show": out is left empty and the
// failure is logged, never returned.
func (c *Client) listAll(ctx context.Context, resource string, out interface{}) {
	data, err := c.do(ctx, http.MethodGet, resource+"/all", nil)
	if err != nil {
		log.Printf("Failed to list %s: %v", resource, err)
		return
	}
	if err := normalizeList(data, out); err != nil {
		log.Printf("Malformed list response for %s: %v", resource, err)
	}
}

// normalizeList accepts either a bare JSON array or a `{"data": [...]}`
// envelope and decodes the inner array into out in both cases.
func normalizeList(data []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return errors.Wrap(err, "list response is neither an array nor an envelope")
	}
	inner := bytes.TrimSpace(envelope.Data)
	if len(inner) == 0 || inner[0] != '[' {
		return errors.New("envelope data is not an array")
	}
	return json.Unmarshal(inner, out)
}

// apiError extracts the server-authored message when the error body is JSON,
// falling back to the transport status text for empty or unparseable bodies.
func apiError(resp *http.Response, data []byte) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    resp.Status,
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		switch {
		case body.Error != "":
			apiErr.Message = body.Error
		case body.Message != "":
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
