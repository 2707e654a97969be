package sonarr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/intent"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	c := New("sonarr", server.URL, "test-key")
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_AllItems(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":7,"title":"Angel","tvdbId":71035,"year":1999},{"id":8,"title":"Buffy the Vampire Slayer","tvdbId":70327}]`))
	})

	items, err := c.AllItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, backend.Item{ID: "7", CatalogID: "71035", Title: "Angel", Year: 1999, Raw: items[0].Raw}, items[0])
	assert.True(t, items[1].InLibrary())
}

func TestClient_Episodes(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/episode", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("seriesId"))
		assert.Equal(t, "1", r.URL.Query().Get("seasonNumber"))
		_, _ = w.Write([]byte(`[
			{"id":101,"seasonNumber":1,"episodeNumber":1,"title":"City Of","episodeFileId":501},
			{"id":102,"seasonNumber":1,"episodeNumber":2,"title":"Lonely Heart","episodeFileId":0}
		]`))
	})

	season := 1
	eps, err := c.Episodes(context.Background(), "7", &season)
	require.NoError(t, err)
	require.Len(t, eps, 2)
	assert.Equal(t, "101", eps[0].ID)
	assert.Equal(t, "501", eps[0].FileID)
	assert.Equal(t, 2, eps[1].Number)
	assert.Empty(t, eps[1].FileID, "episodeFileId 0 means no file")
}

func TestClient_DeleteEpisodeFilesContinuesPastFailures(t *testing.T) {
	var mu sync.Mutex
	var deleted []string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/v3/episodefile/502" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		mu.Lock()
		deleted = append(deleted, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	n, err := c.DeleteEpisodeFiles(context.Background(), []string{"501", "502", "503"})
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"/api/v3/episodefile/501", "/api/v3/episodefile/503"}, deleted)

	require.Error(t, err)
	var be *intent.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusInternalServerError, be.Status)
	assert.Contains(t, be.Op, "episodefile/502")
}

func TestClient_DeleteEpisodeFilesAllFail(t *testing.T) {
	var calls atomic.Int32
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	n, err := c.DeleteEpisodeFiles(context.Background(), []string{"11", "12"})
	assert.Zero(t, n)
	assert.Equal(t, int32(2), calls.Load(), "every file is attempted")

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 2)
}

func TestClient_DeleteEpisodeFilesAllSucceed(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	n, err := c.DeleteEpisodeFiles(context.Background(), []string{"11", "12"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestClient_DeleteItem(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v3/series/7", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
	})
	require.NoError(t, c.DeleteItem(context.Background(), "7", true))
}

func TestClient_AddItem(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(71035), body["tvdbId"])
		assert.Equal(t, float64(1), body["qualityProfileId"])
		assert.Equal(t, "/tv", body["rootFolderPath"])
		assert.Equal(t, map[string]any{"searchForMissingEpisodes": true}, body["addOptions"])
		body["id"] = 9
		_ = json.NewEncoder(w).Encode(body)
	})

	item, err := c.AddItem(context.Background(), backend.AddRequest{
		Item:        backend.Item{Title: "Angel", CatalogID: "71035", Raw: map[string]any{"title": "Angel", "tvdbId": float64(71035)}},
		ProfileID:   1,
		RootFolder:  "/tv",
		Monitored:   true,
		SearchOnAdd: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "9", item.ID)
}

func TestClient_TriggerSearch(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/command", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "SeriesSearch", "seriesId": float64(7)}, body)
		_, _ = w.Write([]byte(`{"id":1,"name":"SeriesSearch","status":"queued"}`))
	})

	out, err := c.TriggerSearch(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "queued", out["status"])

	_, err = c.TriggerSearch(context.Background(), "not-a-number")
	assert.Error(t, err)
}

func TestClient_TestConnectionBadKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New("sonarr", server.URL, "wrong")
	assert.False(t, c.TestConnection(context.Background()))
}
