/**
 * @description
 * This package provides the shared transport wrapper for the bank gateway API.
 * It encapsulates the logic for making HTTP requests against the gateway's
 * versioned endpoints, handling request body construction, schema validation on
 * both sides of the wire, and parsing responses into typed structs.
 *
 * Resource clients (pkg/usersclient, pkg/accountsclient, ...) build on the
 * Get/Post helpers here and never touch net/http directly.
 */
package gatewayhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs schema validation over a request/response struct and
// returns a *ValidationError describing the first failing field.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return wrapValidation(err)
	}
	return nil
}

// Client is the transport client for the gateway API. It is stateless across
// calls and safe for concurrent reuse by multiple virtual-user sessions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a gateway transport client with a default 30s timeout.
func NewClient(baseURL, apiKey string) *Client {
	return NewClientWithHTTP(baseURL, apiKey, &http.Client{Timeout: 30 * time.Second})
}

// NewClientWithHTTP creates a gateway transport client using an
// already-configured http.Client (timeout and pooling policy belong to the caller).
func NewClientWithHTTP(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// BaseURL returns the normalized base URL the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Get performs a GET request against path with optional query parameters and
// decodes the response body into out. out is validated after decoding.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	return c.do(req, path, out)
}

// Post validates body, serializes it to the wire format and performs a POST
// request against path, decoding the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	if err := ValidateStruct(body); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	return c.do(req, path, out)
}

func (c *Client) setAuth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
}

// do executes exactly one HTTP call. Network failures surface as
// *TransportError, non-2xx statuses as *APIError, undecodable bodies as
// *ResponseParseError and schema violations as *ValidationError.
func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(bodyBytes, apiErr); err != nil {
			apiErr.Message = strings.TrimSpace(string(bodyBytes))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(bodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return &ResponseParseError{Op: op, Err: err}
	}

	if err := ValidateStruct(out); err != nil {
		return err
	}
	return nil
}
