// Package audiobookshelf is the audiobook backend adapter. Audiobookshelf
// has no external catalog: search and listing both cover the server's own
// book libraries.
package audiobookshelf

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

// Client talks to one Audiobookshelf server.
type Client struct {
	*arr.Client
}

var (
	_ backend.MediaClient = (*Client)(nil)
	_ backend.Lister      = (*Client)(nil)
)

// New creates an Audiobookshelf client authenticated with an API token.
func New(name, baseURL, token string, opts ...arr.Option) *Client {
	return &Client{Client: arr.New(name, baseURL, arr.Bearer(token), opts...)}
}

type library struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MediaType string `json:"mediaType"`
}

// TestConnection reports whether the token can list libraries.
func (c *Client) TestConnection(ctx context.Context) bool {
	return c.Ping(ctx, "api/libraries")
}

// Version returns the server version from the status endpoint.
func (c *Client) Version(ctx context.Context) (string, error) {
	var status struct {
		ServerVersion string `json:"serverVersion"`
	}
	if err := c.Get(ctx, "status", nil, &status); err != nil {
		return "", err
	}
	return status.ServerVersion, nil
}

func (c *Client) bookLibraries(ctx context.Context) ([]library, error) {
	var resp struct {
		Libraries []library `json:"libraries"`
	}
	if err := c.Get(ctx, "api/libraries", nil, &resp); err != nil {
		return nil, err
	}
	books := make([]library, 0, len(resp.Libraries))
	for _, l := range resp.Libraries {
		if l.MediaType == "" || l.MediaType == "book" {
			books = append(books, l)
		}
	}
	return books, nil
}

// Search searches every book library.
func (c *Client) Search(ctx context.Context, query string) ([]backend.Item, error) {
	libs, err := c.bookLibraries(ctx)
	if err != nil {
		return nil, err
	}

	var items []backend.Item
	for _, l := range libs {
		var resp struct {
			Book []struct {
				LibraryItem arr.Raw `json:"libraryItem"`
			} `json:"book"`
		}
		q := url.Values{"q": {query}}
		if err := c.Get(ctx, "api/libraries/"+url.PathEscape(l.ID)+"/search", q, &resp); err != nil {
			return nil, err
		}
		for _, b := range resp.Book {
			items = append(items, itemFrom(b.LibraryItem))
		}
	}
	return items, nil
}

// AllItems lists every item of every book library.
func (c *Client) AllItems(ctx context.Context) ([]backend.Item, error) {
	libs, err := c.bookLibraries(ctx)
	if err != nil {
		return nil, err
	}

	var items []backend.Item
	for _, l := range libs {
		var resp struct {
			Results []arr.Raw `json:"results"`
		}
		if err := c.Get(ctx, "api/libraries/"+url.PathEscape(l.ID)+"/items", nil, &resp); err != nil {
			return nil, err
		}
		for _, r := range resp.Results {
			items = append(items, itemFrom(r))
		}
	}
	return items, nil
}

// GetItem fetches one library item.
func (c *Client) GetItem(ctx context.Context, id string) (backend.Item, error) {
	var raw arr.Raw
	if err := c.Get(ctx, "api/items/"+url.PathEscape(id), nil, &raw); err != nil {
		return backend.Item{}, err
	}
	return itemFrom(raw), nil
}

// DeleteItem removes a library item. With deleteFiles the files are removed
// from disk as well.
func (c *Client) DeleteItem(ctx context.Context, id string, deleteFiles bool) error {
	var q url.Values
	if deleteFiles {
		q = url.Values{"hard": {"1"}}
	}
	return c.Delete(ctx, "api/items/"+url.PathEscape(id), q)
}

func itemFrom(raw arr.Raw) backend.Item {
	item := backend.Item{ID: arr.String(raw, "id"), Raw: raw}
	media, _ := raw["media"].(map[string]any)
	meta, _ := media["metadata"].(map[string]any)
	item.Title = arr.String(meta, "title")
	item.CatalogID = arr.FirstString(meta, "asin", "isbn")
	if y, err := strconv.Atoi(arr.String(meta, "publishedYear")); err == nil {
		item.Year = y
	}
	return item
}
