package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/mocks"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/resolver"
)

type clientSource struct {
	client backend.MediaClient
	err    error
}

func (c clientSource) MediaClientFor(intent.MediaType) (backend.MediaClient, error) {
	return c.client, c.err
}

func intPtr(n int) *int { return &n }

// expectHandle expects one acquire/release cycle of a sonarr adapter.
func expectHandle(m *mocks.MockSeriesManager) {
	m.EXPECT().Name().Return("sonarr").AnyTimes()
	m.EXPECT().Close().Return(nil).Times(1)
}

var library = []backend.Item{
	{ID: "1", Title: "Angel Beats!"},
	{ID: "2", Title: "Angel"},
	{ID: "3", Title: "The Angel of Death"},
}

func TestEnrich_ExactBeatsSubstring(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSeriesManager(ctrl)
	expectHandle(m)
	m.EXPECT().AllItems(gomock.Any()).Return(library, nil)

	in := &intent.Intent{Action: intent.ActionInfo, MediaType: intent.MediaTV, Title: "ANGEL"}
	require.NoError(t, resolver.New(clientSource{client: m}, nil).Enrich(context.Background(), in))

	assert.Equal(t, intent.LibraryRef("2"), in.Item())
	assert.Equal(t, intent.LibraryRef("2"), in.Series())
	assert.Nil(t, in.SeasonEpisodes)
}

func TestEnrich_SubstringFirstInListingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSeriesManager(ctrl)
	expectHandle(m)
	m.EXPECT().AllItems(gomock.Any()).Return(library, nil)

	in := &intent.Intent{Action: intent.ActionInfo, MediaType: intent.MediaTV, Title: "angel b"}
	require.NoError(t, resolver.New(clientSource{client: m}, nil).Enrich(context.Background(), in))
	assert.Equal(t, "1", in.Item().ID())
}

func TestEnrich_PrefetchesSeason(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSeriesManager(ctrl)
	expectHandle(m)
	m.EXPECT().AllItems(gomock.Any()).Return(library, nil)
	m.EXPECT().Episodes(gomock.Any(), "2", intPtr(1)).Return([]backend.Episode{
		{ID: "101", Season: 1, Number: 1, FileID: "9001"},
		{ID: "102", Season: 1, Number: 2, FileID: ""},
	}, nil)

	in := &intent.Intent{
		Action: intent.ActionRemove, MediaType: intent.MediaTV, Title: "Angel",
		Season: intPtr(1), Episodes: []int{1, 2},
	}
	require.NoError(t, resolver.New(clientSource{client: m}, nil).Enrich(context.Background(), in))

	assert.Equal(t, []intent.EpisodeFile{
		{EpisodeID: "101", Number: 1, FileID: "9001"},
		{EpisodeID: "102", Number: 2},
	}, in.SeasonEpisodes)
}

func TestEnrich_CatalogFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockManager(ctrl)
	m.EXPECT().Name().Return("radarr").AnyTimes()
	m.EXPECT().Close().Return(nil)
	m.EXPECT().AllItems(gomock.Any()).Return([]backend.Item{{ID: "5", Title: "Heat"}}, nil)
	m.EXPECT().Search(gomock.Any(), "Dune").Return([]backend.Item{
		{CatalogID: "438631", Title: "Dune", Year: 2021},
		{CatalogID: "841", Title: "Dune", Year: 1984},
	}, nil)

	in := &intent.Intent{Action: intent.ActionAdd, MediaType: intent.MediaMovie, Title: "Dune"}
	require.NoError(t, resolver.New(clientSource{client: m}, nil).Enrich(context.Background(), in))

	assert.Equal(t, intent.CatalogRef("438631"), in.Item())
	assert.False(t, in.Series().IsResolved())
}

func TestEnrich_NotFoundSuggests(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSeriesManager(ctrl)
	expectHandle(m)
	m.EXPECT().AllItems(gomock.Any()).Return([]backend.Item{{ID: "1", Title: "Breaking Bad"}}, nil)
	m.EXPECT().Search(gomock.Any(), "Braking Bad").Return(nil, nil)

	in := &intent.Intent{Action: intent.ActionInfo, MediaType: intent.MediaTV, Title: "Braking Bad"}
	err := resolver.New(clientSource{client: m}, nil).Enrich(context.Background(), in)

	var re *intent.ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Braking Bad", re.Title)
	assert.Equal(t, "Breaking Bad", re.Suggestion)
	assert.False(t, in.Item().IsResolved())
}

func TestEnrich_SearchHitAlreadyInLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediaClient(ctrl)
	m.EXPECT().Name().Return("audiobookshelf").AnyTimes()
	m.EXPECT().Close().Return(nil)
	m.EXPECT().Search(gomock.Any(), "Project Hail Mary").Return([]backend.Item{
		{ID: "li_abc", CatalogID: "B08FHBV4ZX", Title: "Project Hail Mary"},
	}, nil)

	in := &intent.Intent{Action: intent.ActionRemove, MediaType: intent.MediaAudiobook, Title: "Project Hail Mary"}
	require.NoError(t, resolver.New(clientSource{client: m}, nil).Enrich(context.Background(), in))
	assert.Equal(t, intent.LibraryRef("li_abc"), in.Item())
}

func TestEnrich_SkipsWhenNothingToDo(t *testing.T) {
	r := resolver.New(clientSource{err: errors.New("must not be called")}, nil)

	untitled := &intent.Intent{Action: intent.ActionList, MediaType: intent.MediaTV}
	assert.NoError(t, r.Enrich(context.Background(), untitled))

	resolved := &intent.Intent{Action: intent.ActionInfo, MediaType: intent.MediaMovie, Title: "Heat"}
	require.NoError(t, resolved.ResolveItem(intent.LibraryRef("5")))
	assert.NoError(t, r.Enrich(context.Background(), resolved))
}

func TestEnrich_ConfigurationError(t *testing.T) {
	cfgErr := &intent.ConfigurationError{Param: "LIDARR_URL and LIDARR_API_KEY", Msg: "no music backend configured"}
	r := resolver.New(clientSource{err: cfgErr}, nil)

	err := r.Enrich(context.Background(), &intent.Intent{Action: intent.ActionAdd, MediaType: intent.MediaMusic, Title: "Low"})
	var ce *intent.ConfigurationError
	assert.ErrorAs(t, err, &ce)
}

func TestEnrich_BackendErrorReleasesClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSeriesManager(ctrl)
	expectHandle(m)
	boom := &intent.BackendError{Backend: "sonarr", Op: "GET series", Err: errors.New("refused")}
	m.EXPECT().AllItems(gomock.Any()).Return(nil, boom)

	err := resolver.New(clientSource{client: m}, nil).Enrich(context.Background(),
		&intent.Intent{Action: intent.ActionInfo, MediaType: intent.MediaTV, Title: "Angel"})
	assert.ErrorIs(t, err, boom)
}

func TestMatch(t *testing.T) {
	items := []backend.Item{{ID: "1", Title: "Amélie"}, {ID: "2", Title: "Cafe Society"}}

	got, how, ok := resolver.Match(items, "AMÉLIE")
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, resolver.MatchExact, how)

	got, how, ok = resolver.Match(items, "society")
	require.True(t, ok)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, resolver.MatchSubstring, how)

	_, _, ok = resolver.Match(items, "Heat")
	assert.False(t, ok)
}
