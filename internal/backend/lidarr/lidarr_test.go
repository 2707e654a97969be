package lidarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrmate/internal/backend"
)

func TestClient_AllItemsUsesArtistName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/artist", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":3,"artistName":"Radiohead","foreignArtistId":"a74b1b7f"}]`))
	}))
	defer server.Close()

	c := New("lidarr", server.URL, "k")
	items, err := c.AllItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Radiohead", items[0].Title)
	assert.Equal(t, "a74b1b7f", items[0].CatalogID)
}

func TestClient_AddItemFetchesMetadataProfile(t *testing.T) {
	var (
		mu    sync.Mutex
		added map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/metadataprofile":
			_, _ = w.Write([]byte(`[{"id":2,"name":"Standard"}]`))
		case "/api/v1/artist":
			mu.Lock()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&added))
			mu.Unlock()
			_, _ = w.Write([]byte(`{"id":4,"artistName":"Radiohead","foreignArtistId":"a74b1b7f"}`))
		}
	}))
	defer server.Close()

	c := New("lidarr", server.URL, "k")
	item, err := c.AddItem(context.Background(), backend.AddRequest{
		Item:       backend.Item{Title: "Radiohead", CatalogID: "a74b1b7f"},
		ProfileID:  1,
		RootFolder: "/music",
	})
	require.NoError(t, err)
	assert.Equal(t, "4", item.ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, float64(2), added["metadataProfileId"])
	assert.Equal(t, "a74b1b7f", added["foreignArtistId"])
}
