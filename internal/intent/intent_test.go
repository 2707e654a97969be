package intent

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestIntent_ResolveItemOnce(t *testing.T) {
	in := &Intent{Action: ActionRemove, MediaType: MediaTV, Title: "Angel"}
	assert.False(t, in.Item().IsResolved())
	assert.Equal(t, RefUnresolved, in.Item().Kind())

	require.NoError(t, in.ResolveItem(LibraryRef("42")))
	assert.True(t, in.Item().IsLibrary())
	assert.Equal(t, "42", in.Item().ID())

	err := in.ResolveItem(CatalogRef("99"))
	assert.True(t, errors.Is(err, ErrAlreadyResolved))
	assert.Equal(t, "42", in.Item().ID(), "first write must stick")
}

func TestIntent_ResolveSeriesOnce(t *testing.T) {
	in := &Intent{}
	require.Error(t, in.ResolveSeries(""))
	require.NoError(t, in.ResolveSeries("7"))
	assert.ErrorIs(t, in.ResolveSeries("8"), ErrAlreadyResolved)
	assert.Equal(t, "library:7", in.Series().String())
}

func TestIntent_ResolveItemRejectsEmpty(t *testing.T) {
	in := &Intent{}
	assert.Error(t, in.ResolveItem(Ref{}))
	assert.Error(t, in.ResolveItem(LibraryRef("")))
	assert.False(t, in.Item().IsResolved())
}

func TestIntent_MarshalJSON(t *testing.T) {
	in := &Intent{
		Action:    ActionRemove,
		MediaType: MediaTV,
		Title:     "Angel",
		Season:    intPtr(1),
		Episodes:  []int{1, 2},
	}
	require.NoError(t, in.ResolveItem(LibraryRef("42")))
	require.NoError(t, in.ResolveSeries("42"))

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "remove", got["action"])
	assert.Equal(t, "tv", got["media_type"])
	assert.Equal(t, float64(1), got["season"])
	assert.Equal(t, map[string]any{"kind": "library", "id": "42"}, got["item"])
	assert.Equal(t, map[string]any{"kind": "library", "id": "42"}, got["series"])
	assert.NotContains(t, got, "SeasonEpisodes")
}

func TestIntent_MarshalJSONOmitsUnresolved(t *testing.T) {
	data, err := json.Marshal(&Intent{Action: ActionList, MediaType: MediaMovie})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotContains(t, got, "item")
	assert.NotContains(t, got, "series")
	assert.NotContains(t, got, "season")
}

func TestCriteria_String(t *testing.T) {
	c := Criteria{
		"language": " en ",
		"year":     float64(1999),
		"count":    3,
		"flag":     true,
		"nothing":  nil,
	}
	assert.Equal(t, "en", c.String("language"))
	assert.Equal(t, "1999", c.String("year"))
	assert.Equal(t, "3", c.String("count"))
	assert.Equal(t, "true", c.String("flag"))
	assert.Equal(t, "", c.String("nothing"))
	assert.Equal(t, "", c.String("missing"))
	assert.Equal(t, "", Criteria(nil).String("language"))
}

func TestIntent_ServiceAndOperation(t *testing.T) {
	in := &Intent{Criteria: Criteria{"service": "Plex", "operation": "Refresh"}}
	assert.Equal(t, "plex", in.Service())
	assert.Equal(t, "refresh", in.Operation())
	assert.Equal(t, "", (&Intent{}).Service())
}

func TestEnums(t *testing.T) {
	assert.True(t, ActionDownloadSubtitle.Valid())
	assert.False(t, Action("explode").Valid())
	assert.True(t, MediaAudiobook.Valid())
	assert.False(t, MediaType("podcast").Valid())
	assert.Equal(t, "TV show(s)", MediaTV.Noun())
	assert.Equal(t, "movie(s)", MediaAdult.Noun())
}
