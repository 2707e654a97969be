package executor

import (
	"context"
	"fmt"
	"slices"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/intent"
)

func notInLibrary(in *intent.Intent) intent.ExecutionResult {
	return intent.Failed(fmt.Sprintf("'%s' is not in your library", in.DisplayTitle()))
}

func (e *Executor) remove(ctx context.Context, in *intent.Intent, client backend.MediaClient) intent.ExecutionResult {
	if in.MediaType == intent.MediaTV {
		return e.removeTV(ctx, in, client)
	}

	item := in.Item()
	if !item.IsLibrary() {
		return notInLibrary(in)
	}
	if err := client.DeleteItem(ctx, item.ID(), true); err != nil {
		return e.fail(in, err)
	}
	return intent.Succeeded(fmt.Sprintf("Removed '%s' and all files", in.Title), nil)
}

func (e *Executor) removeTV(ctx context.Context, in *intent.Intent, client backend.MediaClient) intent.ExecutionResult {
	series := in.Series()
	if !series.IsLibrary() {
		return notInLibrary(in)
	}

	if !in.HasSeason() {
		if err := client.DeleteItem(ctx, series.ID(), true); err != nil {
			return e.fail(in, err)
		}
		return intent.Succeeded(fmt.Sprintf("Removed series '%s' and all files", in.Title), nil)
	}

	episodic, ok := client.(backend.Episodic)
	if !ok {
		return intent.NotImplemented(in.Action, in.MediaType)
	}
	episodes, err := e.seasonEpisodes(ctx, in, episodic)
	if err != nil {
		return e.fail(in, err)
	}
	season := *in.Season

	var fileIDs []string
	if len(in.Episodes) > 0 {
		matched := 0
		for _, ep := range episodes {
			if !slices.Contains(in.Episodes, ep.Number) {
				continue
			}
			matched++
			if ep.FileID != "" {
				fileIDs = append(fileIDs, ep.FileID)
			}
		}
		if matched == 0 {
			return intent.Failed(fmt.Sprintf("Could not find episodes %v in season %d of '%s'", in.Episodes, season, in.Title))
		}
		if len(fileIDs) == 0 {
			return intent.Failed(fmt.Sprintf("Episodes %v of '%s' season %d have no files to delete", in.Episodes, in.Title, season))
		}
	} else {
		for _, ep := range episodes {
			if ep.FileID != "" {
				fileIDs = append(fileIDs, ep.FileID)
			}
		}
		if len(fileIDs) == 0 {
			return intent.Failed(fmt.Sprintf("Season %d of '%s' has no files to delete", season, in.Title))
		}
	}

	deleted, err := episodic.DeleteEpisodeFiles(ctx, fileIDs)
	if deleted == 0 && err != nil {
		return e.fail(in, err)
	}
	res := intent.Succeeded(
		fmt.Sprintf("Removed %d episode file(s) from %s Season %d", deleted, in.Title, season),
		map[string]any{"deleted_count": deleted, "requested_count": len(fileIDs)},
	)
	if err != nil {
		e.log.Warn("some episode files were not deleted", "series", in.Title, "season", season, "error", err)
		res.Errors = []string{fmt.Sprintf("%d of %d episode file(s) not deleted: %s",
			len(fileIDs)-deleted, len(fileIDs), intent.UserMessage(err))}
	}
	return res
}

// seasonEpisodes returns the prefetched season listing, fetching it when
// enrichment did not.
func (e *Executor) seasonEpisodes(ctx context.Context, in *intent.Intent, episodic backend.Episodic) ([]intent.EpisodeFile, error) {
	if in.SeasonEpisodes != nil {
		return in.SeasonEpisodes, nil
	}
	eps, err := episodic.Episodes(ctx, in.Series().ID(), in.Season)
	if err != nil {
		return nil, err
	}
	out := make([]intent.EpisodeFile, len(eps))
	for i, ep := range eps {
		out[i] = intent.EpisodeFile{EpisodeID: ep.ID, Number: ep.Number, FileID: ep.FileID}
	}
	return out, nil
}

func (e *Executor) search(ctx context.Context, in *intent.Intent, client backend.MediaClient) intent.ExecutionResult {
	ref := in.Item()
	if in.MediaType == intent.MediaTV {
		ref = in.Series()
	}
	if researcher, ok := client.(backend.Researcher); ok && ref.IsLibrary() {
		data, err := researcher.TriggerSearch(ctx, ref.ID())
		if err != nil {
			return e.fail(in, err)
		}
		return intent.Succeeded(fmt.Sprintf("Triggered search for '%s'", in.Title), data)
	}

	if in.Title == "" {
		return intent.Failed("A title is required to search")
	}
	results, err := client.Search(ctx, in.Title)
	if err != nil {
		return e.fail(in, err)
	}
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return intent.Succeeded(
		fmt.Sprintf("Found %d result(s) for '%s'", len(results), in.Title),
		map[string]any{"results": results},
	)
}

func (e *Executor) add(ctx context.Context, in *intent.Intent, client backend.MediaClient) intent.ExecutionResult {
	lib, ok := client.(backend.Library)
	if !ok {
		return intent.NotImplemented(in.Action, in.MediaType)
	}
	if in.Item().IsLibrary() {
		return intent.Failed(fmt.Sprintf("'%s' is already in your library", in.Title))
	}

	profiles, err := lib.QualityProfiles(ctx)
	if err != nil {
		return e.fail(in, err)
	}
	folders, err := lib.RootFolders(ctx)
	if err != nil {
		return e.fail(in, err)
	}
	if len(profiles) == 0 || len(folders) == 0 {
		return e.fail(in, &intent.ConfigurationError{
			Msg: fmt.Sprintf("%s has no quality profiles or root folders", client.Name()),
		})
	}

	results, err := client.Search(ctx, in.Title)
	if err != nil {
		return e.fail(in, err)
	}
	if len(results) == 0 {
		return e.fail(in, &intent.ResolutionError{
			Title: in.Title,
			Msg:   fmt.Sprintf("Could not find '%s' to add", in.Title),
		})
	}

	// First result, first profile, first root folder: there is no
	// interactive selection.
	added, err := lib.AddItem(ctx, backend.AddRequest{
		Item:        results[0],
		ProfileID:   profiles[0].ID,
		RootFolder:  folders[0].Path,
		Monitored:   true,
		SearchOnAdd: true,
	})
	if err != nil {
		return e.fail(in, err)
	}
	return intent.Succeeded(fmt.Sprintf("Added '%s' to library", added.Title), itemData(added))
}

func (e *Executor) list(ctx context.Context, in *intent.Intent, client backend.MediaClient) intent.ExecutionResult {
	lister, ok := client.(backend.Lister)
	if !ok {
		return intent.NotImplemented(in.Action, in.MediaType)
	}
	items, err := lister.AllItems(ctx)
	if err != nil {
		return e.fail(in, err)
	}
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	return intent.Succeeded(
		fmt.Sprintf("Found %d %s", len(items), in.MediaType.Noun()),
		map[string]any{"titles": titles, "count": len(items)},
	)
}

func (e *Executor) info(ctx context.Context, in *intent.Intent, client backend.MediaClient) intent.ExecutionResult {
	item := in.Item()
	if !item.IsLibrary() {
		return notInLibrary(in)
	}
	got, err := client.GetItem(ctx, item.ID())
	if err != nil {
		return e.fail(in, err)
	}
	return intent.Succeeded(fmt.Sprintf("Details for '%s'", in.Title), itemData(got))
}

// itemData is the result payload for one item: its raw record when the
// backend returned one.
func itemData(it backend.Item) map[string]any {
	if it.Raw != nil {
		return it.Raw
	}
	data := map[string]any{"title": it.Title}
	if it.Year != 0 {
		data["year"] = it.Year
	}
	return data
}
