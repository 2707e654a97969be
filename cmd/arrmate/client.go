package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/pipeline"
	"github.com/vmunix/arrmate/internal/registry"
)

// Client wraps HTTP calls to the arrmated API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new arrmated API client.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			// Commands wait on the LLM and the backends.
			Timeout: 2 * time.Minute,
		},
	}
}

// ServicesResponse mirrors GET /api/v1/services.
type ServicesResponse struct {
	Services  []registry.Descriptor `json:"services"`
	Total     int                   `json:"total"`
	Available int                   `json:"available"`
}

// HistoryResponse mirrors GET /api/v1/history.
type HistoryResponse struct {
	Items []*history.Entry `json:"items"`
	Total int              `json:"total"`
	Limit int              `json:"limit"`
}

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// Execute runs a command on the server.
func (c *Client) Execute(ctx context.Context, command string, dryRun bool) (pipeline.Response, error) {
	var resp pipeline.Response
	err := c.do(ctx, http.MethodPost, "/api/v1/execute", map[string]any{"command": command, "dry_run": dryRun}, &resp)
	return resp, err
}

// Parse parses and validates a command without resolving or executing it.
func (c *Client) Parse(ctx context.Context, command string) (parseOutput, error) {
	var out parseOutput
	err := c.do(ctx, http.MethodPost, "/api/v1/parse", map[string]any{"command": command}, &out)
	return out, err
}

// Services lists backends, re-probing them first when refresh is set.
func (c *Client) Services(ctx context.Context, refresh bool) (*ServicesResponse, error) {
	var resp ServicesResponse
	method, path := http.MethodGet, "/api/v1/services"
	if refresh {
		method, path = http.MethodPost, "/api/v1/services/refresh"
	}
	if err := c.do(ctx, method, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History lists recent commands.
func (c *Client) History(ctx context.Context, limit int) (*HistoryResponse, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/history"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp HistoryResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
