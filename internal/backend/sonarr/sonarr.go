// Package sonarr is the TV backend adapter (Sonarr API v3).
package sonarr

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

// Client talks to one Sonarr instance.
type Client struct {
	*arr.Servarr
}

var _ backend.SeriesManager = (*Client)(nil)

// New creates a Sonarr client.
func New(name, baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{Servarr: arr.NewServarr(name, baseURL, apiKey, "api/v3", opts...)}
}

// Search looks up series in Sonarr's catalog (TVDB).
func (c *Client) Search(ctx context.Context, query string) ([]backend.Item, error) {
	raws, err := c.Lookup(ctx, "series", query)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, "tvdbId"), nil
}

// GetItem fetches a library series.
func (c *Client) GetItem(ctx context.Context, id string) (backend.Item, error) {
	raw, err := c.One(ctx, "series", id)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, "tvdbId"), nil
}

// DeleteItem removes a series.
func (c *Client) DeleteItem(ctx context.Context, id string, deleteFiles bool) error {
	return c.Remove(ctx, "series", id, deleteFiles)
}

// AllItems lists every series in the library.
func (c *Client) AllItems(ctx context.Context) ([]backend.Item, error) {
	raws, err := c.List(ctx, "series", nil)
	if err != nil {
		return nil, err
	}
	return arr.ItemsFrom(raws, "tvdbId"), nil
}

// AddItem adds a series from a lookup result.
func (c *Client) AddItem(ctx context.Context, req backend.AddRequest) (backend.Item, error) {
	body, err := arr.AddBody(req)
	if err != nil {
		return backend.Item{}, err
	}
	body["tvdbId"] = tvdbID(req.Item)
	body["addOptions"] = map[string]any{"searchForMissingEpisodes": req.SearchOnAdd}
	if _, ok := body["seasonFolder"]; !ok {
		body["seasonFolder"] = true
	}
	raw, err := c.Create(ctx, "series", body)
	if err != nil {
		return backend.Item{}, err
	}
	return arr.ItemFrom(raw, "tvdbId"), nil
}

// TriggerSearch queues a SeriesSearch for a library series.
func (c *Client) TriggerSearch(ctx context.Context, id string) (map[string]any, error) {
	seriesID, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	return c.Command(ctx, map[string]any{"name": "SeriesSearch", "seriesId": seriesID})
}

// Episodes lists episodes of a series, optionally for one season.
func (c *Client) Episodes(ctx context.Context, seriesID string, season *int) ([]backend.Episode, error) {
	q := url.Values{"seriesId": {seriesID}}
	if season != nil {
		q.Set("seasonNumber", strconv.Itoa(*season))
	}
	raws, err := c.List(ctx, "episode", q)
	if err != nil {
		return nil, err
	}

	episodes := make([]backend.Episode, 0, len(raws))
	for _, r := range raws {
		fileID := arr.String(r, "episodeFileId")
		if fileID == "0" {
			fileID = ""
		}
		episodes = append(episodes, backend.Episode{
			ID:     arr.String(r, "id"),
			Season: arr.Int(r, "seasonNumber"),
			Number: arr.Int(r, "episodeNumber"),
			Title:  arr.String(r, "title"),
			FileID: fileID,
			Raw:    r,
		})
	}
	return episodes, nil
}

// DeleteEpisodeFiles deletes each episode file and returns how many deletes
// succeeded along with the joined per-file failures.
func (c *Client) DeleteEpisodeFiles(ctx context.Context, fileIDs []string) (int, error) {
	deleted := 0
	var errs []error
	for _, id := range fileIDs {
		if err := c.Delete(ctx, c.Path("episodefile", id), nil); err != nil {
			c.Logger().Warn("failed to delete episode file", "file_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		deleted++
	}
	return deleted, errors.Join(errs...)
}

func tvdbID(item backend.Item) any {
	if n, err := strconv.Atoi(item.CatalogID); err == nil {
		return n
	}
	return item.Raw["tvdbId"]
}
