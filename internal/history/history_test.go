package history_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
)

func setupStore(t *testing.T) *history.Store {
	t.Helper()
	db, err := history.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return history.NewStore(db)
}

func TestStore_AddAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	season := 1
	in := &intent.Intent{Action: intent.ActionRemove, MediaType: intent.MediaTV, Title: "Angel", Season: &season, Episodes: []int{1, 2}}
	require.NoError(t, in.ResolveSeries("7"))
	res := intent.Succeeded("Removed 2 episode file(s) from Angel Season 1", map[string]any{"deleted_count": 2})

	e := history.NewEntry("remove episode 1 and 2 of Angel season 1", in, res, false, 1500*time.Millisecond)
	require.NoError(t, store.Add(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	got, err := store.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "remove", got.Action)
	assert.Equal(t, "tv", got.MediaType)
	assert.Equal(t, "Angel", got.Title)
	assert.Equal(t, int64(1500), got.DurationMS)
	assert.True(t, got.Result.Success)
	assert.Equal(t, float64(2), got.Result.Data["deleted_count"])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got.Intent, &decoded))
	assert.Equal(t, map[string]any{"kind": "library", "id": "7"}, decoded["series"])
}

func TestStore_GetMissing(t *testing.T) {
	_, err := setupStore(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestStore_ParseFailureWithoutIntent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	e := history.NewEntry("gibberish", nil, intent.Failed("Could not understand the command"), false, 0)
	require.NoError(t, store.Add(ctx, e))

	got, err := store.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Action)
	assert.Nil(t, got.Intent)
	assert.False(t, got.Result.Success)
}

func TestStore_List(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	add := func(cmd string, action intent.Action, ok bool) {
		in := &intent.Intent{Action: action, MediaType: intent.MediaMovie}
		res := intent.Succeeded("ok", nil)
		if !ok {
			res = intent.Failed("failed")
		}
		require.NoError(t, store.Add(ctx, history.NewEntry(cmd, in, res, false, 0)))
	}
	add("list movies", intent.ActionList, true)
	add("info heat", intent.ActionInfo, false)
	add("list movies again", intent.ActionList, true)

	entries, err := store.List(ctx, history.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "list movies again", entries[0].Command, "most recent first")

	action := "list"
	entries, err = store.List(ctx, history.Filter{Action: &action})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	failed := false
	entries, err = store.List(ctx, history.Filter{Success: &failed})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "info heat", entries[0].Command)

	entries, err = store.List(ctx, history.Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arrmate.db")
	db, err := history.Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	assert.FileExists(t, path)
}
