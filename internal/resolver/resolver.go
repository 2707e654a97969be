// Package resolver maps the titles in an intent to backend identifiers.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/pkg/title"
)

// Clients hands out media adapters. *registry.Registry implements it.
type Clients interface {
	MediaClientFor(mt intent.MediaType) (backend.MediaClient, error)
}

// Resolver enriches intents with library or catalog references.
type Resolver struct {
	clients Clients
	log     *slog.Logger
}

// New creates a resolver.
func New(clients Clients, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{clients: clients, log: logger.With("component", "resolver")}
}

// Enrich resolves in.Title when it is set and the item is still unresolved.
//
// Resolution order, first hit wins: exact case-folded match over the
// library listing, folded substring match in listing order, then the
// backend's catalog search. Library matches on TV also set the series and,
// when a season is given, prefetch that season's episodes.
func (r *Resolver) Enrich(ctx context.Context, in *intent.Intent) error {
	if in.Title == "" || in.Item().IsResolved() {
		return nil
	}

	client, err := r.clients.MediaClientFor(in.MediaType)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	start := time.Now()
	log := r.log.With("title", in.Title, "media_type", in.MediaType, "backend", client.Name())

	var library []backend.Item
	if lister, ok := client.(backend.Lister); ok {
		library, err = lister.AllItems(ctx)
		if err != nil {
			return err
		}
	}

	if item, how, ok := Match(library, in.Title); ok {
		log.Debug("resolved from library", "id", item.ID, "match", how, "duration_ms", time.Since(start).Milliseconds())
		return r.resolveLibrary(ctx, client, in, item)
	}

	results, err := client.Search(ctx, in.Title)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		rerr := &intent.ResolutionError{Title: in.Title}
		if s, ok := title.Suggest(in.Title, titles(library)); ok {
			rerr.Suggestion = s
		}
		log.Info("title not found", "suggestion", rerr.Suggestion, "duration_ms", time.Since(start).Milliseconds())
		return rerr
	}

	first := results[0]
	if first.InLibrary() {
		log.Debug("resolved from search", "id", first.ID, "duration_ms", time.Since(start).Milliseconds())
		return r.resolveLibrary(ctx, client, in, first)
	}
	if first.CatalogID == "" {
		return &intent.ResolutionError{
			Title: in.Title,
			Msg:   fmt.Sprintf("Search result for '%s' has no usable identifier", in.Title),
		}
	}

	log.Debug("resolved from catalog", "catalog_id", first.CatalogID, "duration_ms", time.Since(start).Milliseconds())
	return in.ResolveItem(intent.CatalogRef(first.CatalogID))
}

func (r *Resolver) resolveLibrary(ctx context.Context, client backend.MediaClient, in *intent.Intent, item backend.Item) error {
	if err := in.ResolveItem(intent.LibraryRef(item.ID)); err != nil {
		return err
	}
	if in.MediaType != intent.MediaTV {
		return nil
	}
	if err := in.ResolveSeries(item.ID); err != nil {
		return err
	}
	if !in.HasSeason() {
		return nil
	}

	episodic, ok := client.(backend.Episodic)
	if !ok {
		return nil
	}
	episodes, err := episodic.Episodes(ctx, item.ID, in.Season)
	if err != nil {
		return err
	}
	in.SeasonEpisodes = make([]intent.EpisodeFile, 0, len(episodes))
	for _, ep := range episodes {
		in.SeasonEpisodes = append(in.SeasonEpisodes, intent.EpisodeFile{
			EpisodeID: ep.ID,
			Number:    ep.Number,
			FileID:    ep.FileID,
		})
	}
	return nil
}

// MatchKind says how a library item matched.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
)

// Match finds query in a library listing: the first exact case-folded match,
// else the first item whose folded title contains the folded query.
func Match(library []backend.Item, query string) (backend.Item, MatchKind, bool) {
	for _, item := range library {
		if title.Equal(item.Title, query) {
			return item, MatchExact, true
		}
	}
	for _, item := range library {
		if title.Contains(item.Title, query) {
			return item, MatchSubstring, true
		}
	}
	return backend.Item{}, "", false
}

func titles(items []backend.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
