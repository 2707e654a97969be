// Package backend defines the contract every media-management adapter
// implements. Each adapter family is its own interface; adapters share no
// base state and callers discover optional behaviour with type assertions.
package backend

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks . MediaClient,Manager,SeriesManager,Subtitles,Orchestrator,MediaServer

import (
	"context"

	"github.com/vmunix/arrmate/internal/intent"
)

// Client is implemented by every adapter.
type Client interface {
	// Name returns the instance name used in logs and status output.
	Name() string
	// TestConnection reports whether the backend answers its status
	// endpoint. It never returns an error.
	TestConnection(ctx context.Context) bool
	// Version returns the backend's self-reported version.
	Version(ctx context.Context) (string, error)
	// Close releases the adapter's HTTP resources.
	Close() error
}

// MediaClient is a backend that owns a library of media items.
type MediaClient interface {
	Client
	// Search queries the backend's external catalog.
	Search(ctx context.Context, query string) ([]Item, error)
	// GetItem fetches one library item by library id.
	GetItem(ctx context.Context, id string) (Item, error)
	// DeleteItem removes a library item, optionally with its files.
	DeleteItem(ctx context.Context, id string, deleteFiles bool) error
}

// Lister is implemented by media clients that can enumerate their library.
type Lister interface {
	AllItems(ctx context.Context) ([]Item, error)
}

// Library is implemented by media clients that can enumerate and grow
// their library.
type Library interface {
	Lister
	QualityProfiles(ctx context.Context) ([]Profile, error)
	RootFolders(ctx context.Context) ([]Folder, error)
	AddItem(ctx context.Context, req AddRequest) (Item, error)
}

// Episodic is implemented by media clients with season/episode structure.
type Episodic interface {
	// Episodes lists a series' episodes, filtered to one season when
	// season is non-nil.
	Episodes(ctx context.Context, seriesID string, season *int) ([]Episode, error)
	// DeleteEpisodeFiles deletes each file and returns how many deletes
	// succeeded. Individual failures do not stop the loop; they come back
	// joined in the error.
	DeleteEpisodeFiles(ctx context.Context, fileIDs []string) (int, error)
}

// Researcher is implemented by media clients that can trigger their own
// indexer search for a library item.
type Researcher interface {
	TriggerSearch(ctx context.Context, id string) (map[string]any, error)
}

// Manager is a media client with a manageable library.
type Manager interface {
	MediaClient
	Library
	Researcher
}

// SeriesManager is a manager for episodic media.
type SeriesManager interface {
	Manager
	Episodic
}

// Subtitles is a companion service that fetches subtitles for items owned by
// the primary TV and movie backends.
type Subtitles interface {
	Client
	MissingSubtitles(ctx context.Context, media intent.MediaType) ([]Item, error)
	DownloadEpisodeSubtitles(ctx context.Context, seriesID, episodeID, language string) error
	DownloadMovieSubtitles(ctx context.Context, movieID, language string) error
	Sync(ctx context.Context, media intent.MediaType) error
}

// Orchestrator is an automation tool that drives other backends.
type Orchestrator interface {
	Client
	Stats(ctx context.Context) (map[string]any, error)
}

// MediaServer is a playback server.
type MediaServer interface {
	Client
	Libraries(ctx context.Context) ([]Section, error)
	Sessions(ctx context.Context) ([]Session, error)
	Refresh(ctx context.Context) error
	Search(ctx context.Context, query string) ([]Item, error)
}
