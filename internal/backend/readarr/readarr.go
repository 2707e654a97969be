// Package readarr is the book backend adapter (Readarr API v1). Readarr is
// retired upstream; the adapter is kept for existing installs.
package readarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

const catalogKey = "foreignAuthorId"

// Client talks to one Readarr instance.
type Client struct {
	*arr.Servarr
}

var _ backend.Manager = (*Client)(nil)

// New creates a Readarr client.
func New(name, baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{Servarr: arr.NewServarr(name, baseURL, apiKey, "api/v1", opts...)}
}

// Search queries the combined author/book catalog search and returns the
// authors it mentions, in result order and without duplicates.
func (c *Client) Search(ctx context.Context, query string) ([]backend.Item, error) {
	var results []arr.Raw
	if err := c.Get(ctx, c.Path("search"), url.Values{"term": {query}}, &results); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	items := make([]backend.Item, 0, len(results))
	for _, r := range results {
		author, ok := r["author"].(map[string]any)
		if !ok {
			continue
		}
		item := arr.ItemFrom(author, catalogKey, "authorName")
		if seen[item.CatalogID] {
			continue
		}
		seen[item.CatalogID] = true
		items = append(items, item)
	}
	return items, nil
}

// GetItem fetches a library author.
func (c *Client) GetItem(ctx context.Context, id string) (backend.Item, error) {
	raw, err := c.One(ctx, "author", id)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, catalogKey, "authorName"), nil
}

// DeleteItem removes an author.
func (c *Client) DeleteItem(ctx context.Context, id string, deleteFiles bool) error {
	return c.Remove(ctx, "author", id, deleteFiles)
}

// AllItems lists every author in the library.
func (c *Client) AllItems(ctx context.Context) ([]backend.Item, error) {
	raws, err := c.List(ctx, "author", nil)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, catalogKey, "authorName"), nil
}

// AddItem adds an author, using the first metadata profile when none is
// named.
func (c *Client) AddItem(ctx context.Context, req backend.AddRequest) (backend.Item, error) {
	if req.MetadataProfileID == 0 {
		profiles, err := c.MetadataProfiles(ctx)
		if err != nil {
			return backend.Item{}, err
		}
		if len(profiles) == 0 {
			return backend.Item{}, fmt.Errorf("add %q: no metadata profiles configured", req.Item.Title)
		}
		req.MetadataProfileID = profiles[0].ID
	}
	body, err := arr.AddBody(req)
	if err != nil {
		return backend.Item{}, err
	}
	body["authorName"] = req.Item.Title
	body[catalogKey] = req.Item.CatalogID
	body["addOptions"] = map[string]any{"searchForMissingBooks": req.SearchOnAdd}
	raw, err := c.Create(ctx, "author", body)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, catalogKey, "authorName"), nil
}

// TriggerSearch queues an AuthorSearch.
func (c *Client) TriggerSearch(ctx context.Context, id string) (map[string]any, error) {
	authorID, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	return c.Command(ctx, map[string]any{"name": "AuthorSearch", "authorId": authorID})
}
