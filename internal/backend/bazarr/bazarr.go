// Package bazarr is the subtitle companion adapter. Bazarr tracks the
// series and movies of the configured Sonarr and Radarr instances and uses
// their ids.
package bazarr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
	"github.com/vmunix/arrmate/internal/intent"
)

// Client talks to one Bazarr instance.
type Client struct {
	*arr.Client
}

var _ backend.Subtitles = (*Client)(nil)

// New creates a Bazarr client.
func New(name, baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{Client: arr.New(name, baseURL, arr.APIKeyHeader("X-API-KEY", apiKey), opts...)}
}

// systemStatus is the response of api/system/status.
type systemStatus struct {
	Data struct {
		BazarrVersion string `json:"bazarr_version"`
	} `json:"data"`
}

// TestConnection reports whether the status endpoint answers.
func (c *Client) TestConnection(ctx context.Context) bool {
	return c.Ping(ctx, "api/system/status")
}

// Version returns Bazarr's version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var status systemStatus
	if err := c.Get(ctx, "api/system/status", nil, &status); err != nil {
		return "", err
	}
	return status.Data.BazarrVersion, nil
}

// MissingSubtitles lists wanted episodes (tv) or movies (movie) that are
// missing at least one subtitle.
func (c *Client) MissingSubtitles(ctx context.Context, media intent.MediaType) ([]backend.Item, error) {
	path, err := wantedPath(media)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data []arr.Raw `json:"data"`
	}
	q := url.Values{"start": {"0"}, "length": {"-1"}}
	if err := c.Get(ctx, path, q, &resp); err != nil {
		return nil, err
	}

	items := make([]backend.Item, 0, len(resp.Data))
	for _, r := range resp.Data {
		if !missing(r) {
			continue
		}
		items = append(items, backend.Item{
			ID:    arr.FirstString(r, "sonarrEpisodeId", "radarrId"),
			Title: arr.FirstString(r, "seriesTitle", "title"),
			Raw:   r,
		})
	}
	return items, nil
}

// DownloadEpisodeSubtitles asks Bazarr to search for and download the best
// subtitle for one episode.
func (c *Client) DownloadEpisodeSubtitles(ctx context.Context, seriesID, episodeID, language string) error {
	q := url.Values{
		"seriesid":  {seriesID},
		"episodeid": {episodeID},
		"language":  {language},
		"forced":    {"false"},
		"hi":        {"false"},
	}
	return c.Do(ctx, http.MethodPatch, "api/episodes/subtitles", q, nil, nil)
}

// DownloadMovieSubtitles asks Bazarr to search for and download the best
// subtitle for one movie.
func (c *Client) DownloadMovieSubtitles(ctx context.Context, movieID, language string) error {
	q := url.Values{
		"radarrid": {movieID},
		"language": {language},
		"forced":   {"false"},
		"hi":       {"false"},
	}
	return c.Do(ctx, http.MethodPatch, "api/movies/subtitles", q, nil, nil)
}

// Sync runs Bazarr's series (tv) or movie (movie) sync task.
func (c *Client) Sync(ctx context.Context, media intent.MediaType) error {
	var task string
	switch media {
	case intent.MediaTV:
		task = "update_series"
	case intent.MediaMovie:
		task = "update_movies"
	default:
		return fmt.Errorf("sync %s: %w", media, backend.ErrUnsupported)
	}
	return c.Do(ctx, http.MethodPost, "api/system/tasks", url.Values{"taskid": {task}}, nil, nil)
}

func wantedPath(media intent.MediaType) (string, error) {
	switch media {
	case intent.MediaTV:
		return "api/episodes/wanted", nil
	case intent.MediaMovie:
		return "api/movies/wanted", nil
	default:
		return "", fmt.Errorf("subtitles for %s: %w", media, backend.ErrUnsupported)
	}
}

// missing reports whether an entry lacks subtitles: either Bazarr lists
// missing languages or it has no subtitles at all.
func missing(r arr.Raw) bool {
	if m, ok := r["missing_subtitles"].([]any); ok && len(m) > 0 {
		return true
	}
	subs, ok := r["subtitles"].([]any)
	return !ok || len(subs) == 0
}
