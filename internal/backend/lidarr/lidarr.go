// Package lidarr is the music backend adapter (Lidarr API v1).
package lidarr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

const catalogKey = "foreignArtistId"

// Client talks to one Lidarr instance.
type Client struct {
	*arr.Servarr
}

var _ backend.Manager = (*Client)(nil)

// New creates a Lidarr client.
func New(name, baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{Servarr: arr.NewServarr(name, baseURL, apiKey, "api/v1", opts...)}
}

// Search looks up artists in the catalog (MusicBrainz).
func (c *Client) Search(ctx context.Context, query string) ([]backend.Item, error) {
	raws, err := c.Lookup(ctx, "artist", query)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, catalogKey, "artistName"), nil
}

// GetItem fetches a library artist.
func (c *Client) GetItem(ctx context.Context, id string) (backend.Item, error) {
	raw, err := c.One(ctx, "artist", id)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, catalogKey, "artistName"), nil
}

// DeleteItem removes an artist.
func (c *Client) DeleteItem(ctx context.Context, id string, deleteFiles bool) error {
	return c.Remove(ctx, "artist", id, deleteFiles)
}

// AllItems lists every artist in the library.
func (c *Client) AllItems(ctx context.Context) ([]backend.Item, error) {
	raws, err := c.List(ctx, "artist", nil)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, catalogKey, "artistName"), nil
}

// AddItem adds an artist. Lidarr also requires a metadata profile; the first
// one is used when the request does not name one.
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
	body["artistName"] = req.Item.Title
	body[catalogKey] = req.Item.CatalogID
	body["addOptions"] = map[string]any{"searchForMissingAlbums": req.SearchOnAdd}
	raw, err := c.Create(ctx, "artist", body)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, catalogKey, "artistName"), nil
}

// TriggerSearch queues an ArtistSearch.
func (c *Client) TriggerSearch(ctx context.Context, id string) (map[string]any, error) {
	artistID, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	return c.Command(ctx, map[string]any{"name": "ArtistSearch", "artistId": artistID})
}
