// Package executor dispatches validated, enriched intents to backend
// adapters and normalizes the outcome into an ExecutionResult.
package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/intent"
)

// DefaultLanguage is used for subtitle downloads without a language.
const DefaultLanguage = "en"

// maxSearchResults caps catalog search results returned to the caller.
const maxSearchResults = 5

// Clients hands out adapters. *registry.Registry implements it. Every
// returned adapter must be closed by the caller.
type Clients interface {
	MediaClientFor(mt intent.MediaType) (backend.MediaClient, error)
	ClientByName(name string) (backend.Client, error)
	SubtitlesClient() (backend.Subtitles, error)
}

// Executor runs intents against backends.
type Executor struct {
	clients Clients
	log     *slog.Logger
}

// New creates an executor.
func New(clients Clients, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{clients: clients, log: logger.With("component", "executor")}
}

// Execute runs in and reports the outcome. It never returns an error:
// resolution, backend and configuration failures become unsuccessful results
// with user-facing text. An intent that fails validation is not executed.
func (e *Executor) Execute(ctx context.Context, in *intent.Intent) (res intent.ExecutionResult) {
	start := time.Now()
	defer func() {
		e.log.Info("executed",
			"action", in.Action,
			"media_type", in.MediaType,
			"success", res.Success,
			"duration_ms", time.Since(start).Milliseconds())
	}()

	if err := intent.Check(in); err != nil {
		return intent.FromError(err)
	}

	if name := in.Service(); name != "" {
		if res, handled := e.executeService(ctx, in, name); handled {
			return res
		}
	}

	switch in.Action {
	case intent.ActionDownloadSubtitle:
		return e.downloadSubtitles(ctx, in)
	case intent.ActionSyncSubtitles:
		return e.syncSubtitles(ctx, in)
	case intent.ActionUpgrade:
		return intent.NotImplemented(in.Action, in.MediaType)
	}

	client, err := e.clients.MediaClientFor(in.MediaType)
	if err != nil {
		return e.fail(in, err)
	}
	defer func() { _ = client.Close() }()

	switch in.Action {
	case intent.ActionRemove, intent.ActionDelete:
		return e.remove(ctx, in, client)
	case intent.ActionSearch:
		return e.search(ctx, in, client)
	case intent.ActionAdd:
		return e.add(ctx, in, client)
	case intent.ActionList:
		return e.list(ctx, in, client)
	case intent.ActionInfo:
		return e.info(ctx, in, client)
	default:
		return intent.NotImplemented(in.Action, in.MediaType)
	}
}

// fail logs the detailed error and converts it into a result.
func (e *Executor) fail(in *intent.Intent, err error) intent.ExecutionResult {
	e.log.Warn("execution failed", "action", in.Action, "media_type", in.MediaType, "error", err)
	return intent.FromError(err)
}
