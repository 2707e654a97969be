// Package arr is the JSON/XML HTTP transport shared by every backend
// adapter, plus the endpoints common to the Servarr family (Sonarr, Radarr,
// Lidarr, Readarr, Whisparr).
package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/intent"
)

// DefaultTimeout bounds every request unless overridden.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// Auth decorates a request with credentials.
type Auth func(req *http.Request)

// APIKeyHeader sends the key in the named header (X-Api-Key, X-API-KEY,
// X-Plex-Token).
func APIKeyHeader(header, key string) Auth {
	return func(req *http.Request) {
		req.Header.Set(header, key)
	}
}

// Bearer sends the token as an Authorization bearer token.
func Bearer(token string) Auth {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Client performs authenticated requests against one backend instance.
type Client struct {
	name       string
	baseURL    string
	auth       Auth
	httpClient *http.Client
	log        *slog.Logger
	xml        bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets a logger for request debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.With("component", "backend", "backend", c.name)
		}
	}
}

// WithXML makes the client request and decode XML responses.
func WithXML() Option {
	return func(c *Client) {
		c.xml = true
	}
}

// New creates a client for the backend named name at baseURL.
func New(name, baseURL string, auth Auth, opts ...Option) *Client {
	c := &Client{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		auth:    auth,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: slog.Default().With("component", "backend", "backend", name),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the backend instance name.
func (c *Client) Name() string { return c.name }

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger { return c.log }

// Close releases idle connections held by the HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Get decodes the response of GET path into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes the response into out (if non-nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.Do(ctx, http.MethodDelete, path, query, nil, nil)
}

// Do performs one request. Transport failures, timeouts, non-2xx responses
// and undecodable bodies are returned as *intent.BackendError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path
	start := time.Now()

	reqURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return c.fail(op, 0, fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return c.fail(op, 0, fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.xml {
		req.Header.Set("Accept", "application/xml")
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if c.auth != nil {
		c.auth(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", "op", op, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return c.fail(op, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("request", "op", op, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.fail(op, resp.StatusCode, statusError(resp.StatusCode, snippet))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if c.xml {
		err = xml.NewDecoder(resp.Body).Decode(out)
	} else {
		err = json.NewDecoder(resp.Body).Decode(out)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return c.fail(op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) fail(op string, status int, err error) error {
	return &intent.BackendError{Backend: c.name, Op: op, Status: status, Err: err}
}

func statusError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return backend.ErrUnauthorized
	case http.StatusNotFound:
		return backend.ErrNotFound
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("unexpected status: %d", status)
	}
	return fmt.Errorf("unexpected status: %d: %s", status, msg)
}

// Ping reports whether GET path answers with a 2xx.
func (c *Client) Ping(ctx context.Context, path string) bool {
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, nil); err != nil {
		c.log.Debug("connection test failed", "error", err)
		return false
	}
	return true
}
