// Package client is a Go client for the textlens HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sozercan/textlens/apimodels"
)

const defaultBaseURL = "http://127.0.0.1:8000"

// emptyBody stands in for error bodies that are missing or not JSON.
const emptyBody = "{}"

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(cl *Client) { cl.baseURL = strings.TrimRight(url, "/") }
}

// Client calls the health and analyze endpoints. It never retries and sets no
// timeout of its own; callers bound requests through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// StatusError reports a non-2xx response. Body holds the response body as
// compact JSON, or "{}" when the body was empty or not JSON.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}

// NetworkError wraps failures where no usable response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err came from the transport rather than from
// an HTTP status.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ErrNoProvider is returned by Health when the document has no provider field.
var ErrNoProvider = errors.New("health response has no provider")

// Health fetches the health document. Non-2xx statuses are returned as
// *StatusError. A provider field that is present but empty is not an error.
func (c *Client) Health(ctx context.Context) (*apimodels.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("building health request: %w", err)
	}

	var raw struct {
		Status   string  `json:"status"`
		Provider *string `json:"provider"`
	}
	if err := c.do(req, "health", &raw); err != nil {
		return nil, err
	}
	if raw.Provider == nil {
		return nil, ErrNoProvider
	}
	return &apimodels.HealthResponse{Status: raw.Status, Provider: *raw.Provider}, nil
}

// Analyze posts the request and decodes the analysis. Non-2xx statuses are
// returned as *StatusError; everything else that goes wrong as *NetworkError.
func (c *Client) Analyze(ctx context.Context, ar apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	payload, err := json.Marshal(ar)
	if err != nil {
		return nil, fmt.Errorf("encoding analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result apimodels.AnalysisResponse
	if err := c.do(req, "analyze", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: canonicalJSON(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decoding response body: %w", err)}
	}
	return nil
}

