// Package plex is the media-server adapter for Plex Media Server. Plex
// answers in XML and authenticates with the X-Plex-Token header.
package plex

import (
	"context"
	"encoding/xml"
	"net/url"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
)

// Client talks to one Plex server.
type Client struct {
	*arr.Client
}

var _ backend.MediaServer = (*Client)(nil)

// New creates a Plex client.
func New(name, baseURL, token string, opts ...arr.Option) *Client {
	opts = append(opts, arr.WithXML())
	return &Client{Client: arr.New(name, baseURL, arr.APIKeyHeader("X-Plex-Token", token), opts...)}
}

// identityResponse is the XML response from /identity.
type identityResponse struct {
	XMLName           xml.Name `xml:"MediaContainer"`
	MachineIdentifier string   `xml:"machineIdentifier,attr"`
	Version           string   `xml:"version,attr"`
}

type section struct {
	Key   string `xml:"key,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name  `xml:"MediaContainer"`
	Sections []section `xml:"Directory"`
}

// metadata is a Video (movie, episode) or Directory (show) element.
type metadata struct {
	RatingKey        string `xml:"ratingKey,attr"`
	Title            string `xml:"title,attr"`
	GrandparentTitle string `xml:"grandparentTitle,attr"`
	Type             string `xml:"type,attr"`
	Year             int    `xml:"year,attr"`
	GUID             string `xml:"guid,attr"`
	User             struct {
		Title string `xml:"title,attr"`
	} `xml:"User"`
	Player struct {
		Title string `xml:"title,attr"`
		State string `xml:"state,attr"`
	} `xml:"Player"`
}

type hub struct {
	Type        string     `xml:"type,attr"`
	Videos      []metadata `xml:"Video"`
	Directories []metadata `xml:"Directory"`
}

// searchResponse is the XML response from /hubs/search.
type searchResponse struct {
	XMLName xml.Name `xml:"MediaContainer"`
	Hubs    []hub    `xml:"Hub"`
}

// sessionsResponse is the XML response from /status/sessions.
type sessionsResponse struct {
	XMLName xml.Name   `xml:"MediaContainer"`
	Videos  []metadata `xml:"Video"`
	Tracks  []metadata `xml:"Track"`
}

// TestConnection reports whether /identity answers.
func (c *Client) TestConnection(ctx context.Context) bool {
	return c.Ping(ctx, "identity")
}

// Version returns the server version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var id identityResponse
	if err := c.Get(ctx, "identity", nil, &id); err != nil {
		return "", err
	}
	return id.Version, nil
}

// Libraries lists the library sections.
func (c *Client) Libraries(ctx context.Context) ([]backend.Section, error) {
	var resp sectionsResponse
	if err := c.Get(ctx, "library/sections", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]backend.Section, len(resp.Sections))
	for i, s := range resp.Sections {
		out[i] = backend.Section{Key: s.Key, Title: s.Title, Type: s.Type}
	}
	return out, nil
}

// Sessions lists active playback sessions.
func (c *Client) Sessions(ctx context.Context) ([]backend.Session, error) {
	var resp sessionsResponse
	if err := c.Get(ctx, "status/sessions", nil, &resp); err != nil {
		return nil, err
	}

	all := append(resp.Videos, resp.Tracks...)
	out := make([]backend.Session, 0, len(all))
	for _, m := range all {
		title := m.Title
		if m.GrandparentTitle != "" {
			title = m.GrandparentTitle + " - " + m.Title
		}
		out = append(out, backend.Session{
			Title:  title,
			Type:   m.Type,
			User:   m.User.Title,
			Player: m.Player.Title,
			State:  m.Player.State,
		})
	}
	return out, nil
}

// Refresh starts a scan of every library section.
func (c *Client) Refresh(ctx context.Context) error {
	return c.Get(ctx, "library/sections/all/refresh", nil, nil)
}

// Search searches across all libraries.
func (c *Client) Search(ctx context.Context, query string) ([]backend.Item, error) {
	var resp searchResponse
	if err := c.Get(ctx, "hubs/search", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}

	var items []backend.Item
	for _, h := range resp.Hubs {
		for _, m := range append(h.Videos, h.Directories...) {
			if m.RatingKey == "" {
				continue
			}
			items = append(items, backend.Item{
				ID:        m.RatingKey,
				CatalogID: m.GUID,
				Title:     m.Title,
				Year:      m.Year,
				Raw:       map[string]any{"type": m.Type, "ratingKey": m.RatingKey},
			})
		}
	}
	return items, nil
}
