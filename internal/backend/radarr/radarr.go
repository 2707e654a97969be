// Package radarr is the movie backend adapter (Radarr API v3). Whisparr
// speaks the same dialect and is served by this adapter too.
package radarr

import (
	"context"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

// Client talks to one Radarr or Whisparr instance.
type Client struct {
	*arr.Servarr
}

var _ backend.Manager = (*Client)(nil)

// New creates a Radarr client.
func New(name, baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{Servarr: arr.NewServarr(name, baseURL, apiKey, "api/v3", opts...)}
}

// Search looks up movies in the catalog (TMDB).
func (c *Client) Search(ctx context.Context, query string) ([]backend.Item, error) {
	raws, err := c.Lookup(ctx, "movie", query)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, "tmdbId"), nil
}

// GetItem fetches a library movie.
func (c *Client) GetItem(ctx context.Context, id string) (backend.Item, error) {
	raw, err := c.One(ctx, "movie", id)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, "tmdbId"), nil
}

// DeleteItem removes a movie.
func (c *Client) DeleteItem(ctx context.Context, id string, deleteFiles bool) error {
	return c.Remove(ctx, "movie", id, deleteFiles)
}

// AllItems lists every movie in the library.
func (c *Client) AllItems(ctx context.Context) ([]backend.Item, error) {
	raws, err := c.List(ctx, "movie", nil)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, "tmdbId"), nil
}

// AddItem adds a movie from a lookup result.
func (c *Client) AddItem(ctx context.Context, req backend.AddRequest) (backend.Item, error) {
	body, err := arr.AddBody(req)
	if err != nil {
		return backend.Item{}, err
	}
	if n, err := strconv.Atoi(req.Item.CatalogID); err == nil {
		body["tmdbId"] = n
	}
	body["addOptions"] = map[string]any{"searchForMovie": req.SearchOnAdd}
	raw, err := c.Create(ctx, "movie", body)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, "tmdbId"), nil
}

// TriggerSearch queues a MoviesSearch for a library movie.
func (c *Client) TriggerSearch(ctx context.Context, id string) (map[string]any, error) {
	movieID, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	return c.Command(ctx, map[string]any{"name": "MoviesSearch", "movieIds": []int{movieID}})
}
