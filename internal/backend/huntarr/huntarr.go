// Package huntarr is the adapter for Huntarr, an orchestrator that drives
// missing-content and upgrade hunts across the other backends.
package huntarr

import (
	"context"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

// Client talks to one Huntarr instance.
type Client struct {
	*arr.Client
}

var _ backend.Orchestrator = (*Client)(nil)

// New creates a Huntarr client.
func New(name, baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{Client: arr.New(name, baseURL, arr.APIKeyHeader("X-Api-Key", apiKey), opts...)}
}

// TestConnection reports whether the stats endpoint answers.
func (c *Client) TestConnection(ctx context.Context) bool {
	return c.Ping(ctx, "api/stats")
}

// Version returns Huntarr's version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var v struct {
		Version string `json:"version"`
	}
	if err := c.Get(ctx, "api/version", nil, &v); err != nil {
		return "", err
	}
	return v.Version, nil
}

// Stats returns the dashboard statistics for every connected app.
func (c *Client) Stats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := c.Get(ctx, "api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
