package executor

import (
	"context"
	"fmt"
	"slices"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/intent"
)

// Service operations selectable through criteria.operation.
const (
	OpRefresh   = "refresh"
	OpSessions  = "sessions"
	OpLibraries = "libraries"
	OpSearch    = "search"
	OpStats     = "stats"
	OpMissing   = "missing"
	OpSync      = "sync"
)

// executeService routes an intent addressed to a named companion, media
// server or orchestration backend. handled is false when name is a media
// backend, which is served by the regular media routing instead.
func (e *Executor) executeService(ctx context.Context, in *intent.Intent, name string) (res intent.ExecutionResult, handled bool) {
	client, err := e.clients.ClientByName(name)
	if err != nil {
		return e.fail(in, err), true
	}
	defer func() { _ = client.Close() }()

	switch c := client.(type) {
	case backend.MediaServer:
		return e.mediaServer(ctx, in, c), true
	case backend.Orchestrator:
		return e.orchestrator(ctx, in, c), true
	case backend.Subtitles:
		if in.Action == intent.ActionDownloadSubtitle || in.Action == intent.ActionSyncSubtitles {
			return intent.ExecutionResult{}, false
		}
		return e.subtitleService(ctx, in, c), true
	}
	return intent.ExecutionResult{}, false
}

func unsupported(op string, client backend.Client) intent.ExecutionResult {
	return intent.Failed(fmt.Sprintf("Operation '%s' is not supported by %s", op, client.Name()))
}

func (e *Executor) mediaServer(ctx context.Context, in *intent.Intent, ms backend.MediaServer) intent.ExecutionResult {
	op := in.Operation()
	if op == "" {
		switch {
		case in.Action == intent.ActionSearch:
			op = OpSearch
		default:
			op = OpLibraries
		}
	}

	switch op {
	case OpRefresh:
		if err := ms.Refresh(ctx); err != nil {
			return e.fail(in, err)
		}
		return intent.Succeeded(fmt.Sprintf("Refreshing all %s libraries", ms.Name()), nil)
	case OpSessions:
		sessions, err := ms.Sessions(ctx)
		if err != nil {
			return e.fail(in, err)
		}
		return intent.Succeeded(
			fmt.Sprintf("%d active session(s) on %s", len(sessions), ms.Name()),
			map[string]any{"sessions": sessions, "count": len(sessions)},
		)
	case OpLibraries:
		sections, err := ms.Libraries(ctx)
		if err != nil {
			return e.fail(in, err)
		}
		return intent.Succeeded(
			fmt.Sprintf("Found %d librar(ies) on %s", len(sections), ms.Name()),
			map[string]any{"libraries": sections, "count": len(sections)},
		)
	case OpSearch:
		if in.Title == "" {
			return intent.Failed("A title is required to search")
		}
		items, err := ms.Search(ctx, in.Title)
		if err != nil {
			return e.fail(in, err)
		}
		if len(items) > maxSearchResults {
			items = items[:maxSearchResults]
		}
		return intent.Succeeded(
			fmt.Sprintf("Found %d result(s) for '%s' on %s", len(items), in.Title, ms.Name()),
			map[string]any{"results": items},
		)
	default:
		return unsupported(op, ms)
	}
}

func (e *Executor) orchestrator(ctx context.Context, in *intent.Intent, o backend.Orchestrator) intent.ExecutionResult {
	if op := in.Operation(); op != "" && op != OpStats {
		return unsupported(op, o)
	}
	stats, err := o.Stats(ctx)
	if err != nil {
		return e.fail(in, err)
	}
	return intent.Succeeded(fmt.Sprintf("Statistics from %s", o.Name()), stats)
}

func (e *Executor) subtitleService(ctx context.Context, in *intent.Intent, s backend.Subtitles) intent.ExecutionResult {
	op := in.Operation()
	switch op {
	case "", OpMissing:
		items, err := s.MissingSubtitles(ctx, in.MediaType)
		if err != nil {
			return e.fail(in, err)
		}
		titles := make([]string, len(items))
		for i, it := range items {
			titles[i] = it.Title
		}
		return intent.Succeeded(
			fmt.Sprintf("%d item(s) missing subtitles", len(items)),
			map[string]any{"titles": titles, "count": len(items)},
		)
	case OpSync:
		return e.syncWith(ctx, in, s)
	default:
		return unsupported(op, s)
	}
}

func (e *Executor) downloadSubtitles(ctx context.Context, in *intent.Intent) intent.ExecutionResult {
	s, err := e.clients.SubtitlesClient()
	if err != nil {
		return e.fail(in, err)
	}
	defer func() { _ = s.Close() }()

	lang := in.Criteria.String(intent.CriteriaLanguage)
	if lang == "" {
		lang = DefaultLanguage
	}

	switch in.MediaType {
	case intent.MediaTV:
		series := in.Series()
		if !series.IsLibrary() {
			return notInLibrary(in)
		}
		if !in.HasSeason() {
			return intent.Failed(fmt.Sprintf("Specify a season of '%s' to download subtitles for", in.Title))
		}
		var targets []intent.EpisodeFile
		for _, ep := range in.SeasonEpisodes {
			if len(in.Episodes) == 0 || slices.Contains(in.Episodes, ep.Number) {
				targets = append(targets, ep)
			}
		}
		if len(targets) == 0 {
			return intent.Failed(fmt.Sprintf("Could not find the requested episodes of '%s' season %d", in.Title, *in.Season))
		}

		downloaded := 0
		var errs []string
		for _, ep := range targets {
			if err := s.DownloadEpisodeSubtitles(ctx, series.ID(), ep.EpisodeID, lang); err != nil {
				e.log.Warn("subtitle download failed", "episode", ep.Number, "error", err)
				errs = append(errs, fmt.Sprintf("episode %d: %s", ep.Number, intent.UserMessage(err)))
				continue
			}
			downloaded++
		}
		if downloaded == 0 {
			return intent.Failed(fmt.Sprintf("Could not download %s subtitles for '%s'", lang, in.Title), errs...)
		}
		res := intent.Succeeded(
			fmt.Sprintf("Downloaded %s subtitles for %d episode(s) of %s Season %d", lang, downloaded, in.Title, *in.Season),
			map[string]any{"downloaded_count": downloaded, "language": lang},
		)
		res.Errors = errs
		return res

	case intent.MediaMovie:
		item := in.Item()
		if !item.IsLibrary() {
			return notInLibrary(in)
		}
		if err := s.DownloadMovieSubtitles(ctx, item.ID(), lang); err != nil {
			return e.fail(in, err)
		}
		return intent.Succeeded(
			fmt.Sprintf("Downloaded %s subtitles for '%s'", lang, in.Title),
			map[string]any{"downloaded_count": 1, "language": lang},
		)

	default:
		return intent.NotImplemented(in.Action, in.MediaType)
	}
}

func (e *Executor) syncSubtitles(ctx context.Context, in *intent.Intent) intent.ExecutionResult {
	s, err := e.clients.SubtitlesClient()
	if err != nil {
		return e.fail(in, err)
	}
	defer func() { _ = s.Close() }()
	return e.syncWith(ctx, in, s)
}

func (e *Executor) syncWith(ctx context.Context, in *intent.Intent, s backend.Subtitles) intent.ExecutionResult {
	if in.MediaType != intent.MediaTV && in.MediaType != intent.MediaMovie {
		return intent.NotImplemented(intent.ActionSyncSubtitles, in.MediaType)
	}
	if err := s.Sync(ctx, in.MediaType); err != nil {
		return e.fail(in, err)
	}
	return intent.Succeeded(fmt.Sprintf("Started subtitle sync for %s", in.MediaType.Noun()), nil)
}
