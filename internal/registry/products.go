package registry

import (
	"github.com/vmunix/arrmate/internal/config"
	"github.com/vmunix/arrmate/internal/intent"
)

// Kind groups backends by the role they play.
type Kind string

const (
	KindMedia         Kind = "media"
	KindCompanion     Kind = "companion"
	KindOrchestration Kind = "orchestration"
	KindMediaServer   Kind = "media_server"
)

// Maturity is how complete arrmate's support for a backend is.
type Maturity string

const (
	MaturityComplete   Maturity = "complete"
	MaturityPartial    Maturity = "partial"
	MaturityDeprecated Maturity = "deprecated"
	MaturityPlanned    Maturity = "planned"
)

// Capabilities are the operations arrmate can drive on a backend.
type Capabilities struct {
	CanSearch  bool `json:"can_search"`
	CanAdd     bool `json:"can_add"`
	CanRemove  bool `json:"can_remove"`
	CanUpgrade bool `json:"can_upgrade"`
	CanList    bool `json:"can_list"`
}

// Product is the static description of one backend type.
type Product struct {
	Type         string
	Kind         Kind
	MediaType    intent.MediaType // empty for non-media backends
	Label        string           // human label for status output
	Purpose      string           // one line for the parser prompt
	Maturity     Maturity
	Capabilities Capabilities
}

var full = Capabilities{CanSearch: true, CanAdd: true, CanRemove: true, CanList: true}

// products is keyed by backend type. CanUpgrade is false everywhere until
// an upgrade handler exists.
var products = map[string]Product{
	config.TypeSonarr: {
		Type: config.TypeSonarr, Kind: KindMedia, MediaType: intent.MediaTV,
		Label: "TV Shows", Purpose: "TV shows: search, add, remove series, seasons or episodes, list, info",
		Maturity: MaturityComplete, Capabilities: full,
	},
	config.TypeRadarr: {
		Type: config.TypeRadarr, Kind: KindMedia, MediaType: intent.MediaMovie,
		Label: "Movies", Purpose: "movies: search, add, remove, list, info",
		Maturity: MaturityComplete, Capabilities: full,
	},
	config.TypeLidarr: {
		Type: config.TypeLidarr, Kind: KindMedia, MediaType: intent.MediaMusic,
		Label: "Music", Purpose: "music artists: search, add, remove, list, info",
		Maturity: MaturityPartial, Capabilities: full,
	},
	config.TypeReadarr: {
		Type: config.TypeReadarr, Kind: KindMedia, MediaType: intent.MediaBook,
		Label: "Books", Purpose: "book authors: search, add, remove, list, info (retired upstream)",
		Maturity: MaturityDeprecated, Capabilities: full,
	},
	config.TypeWhisparr: {
		Type: config.TypeWhisparr, Kind: KindMedia, MediaType: intent.MediaAdult,
		Label: "Adult", Purpose: "adult content: search, add, remove, list, info",
		Maturity: MaturityPartial, Capabilities: full,
	},
	config.TypeAudiobookshelf: {
		Type: config.TypeAudiobookshelf, Kind: KindMedia, MediaType: intent.MediaAudiobook,
		Label: "Audiobooks", Purpose: "audiobooks already on the server: search, remove, list, info",
		Maturity:     MaturityPartial,
		Capabilities: Capabilities{CanSearch: true, CanRemove: true, CanList: true},
	},
	config.TypeBazarr: {
		Type: config.TypeBazarr, Kind: KindCompanion,
		Label: "Subtitles", Purpose: "subtitles for TV and movies: download_subtitle, sync_subtitles, missing subtitles",
		Maturity:     MaturityComplete,
		Capabilities: Capabilities{CanSearch: true, CanList: true},
	},
	config.TypePlex: {
		Type: config.TypePlex, Kind: KindMediaServer,
		Label: "Media Server", Purpose: "Plex media server: refresh libraries, list libraries, active sessions (criteria.service=plex)",
		Maturity:     MaturityPartial,
		Capabilities: Capabilities{CanSearch: true, CanList: true},
	},
	config.TypeHuntarr: {
		Type: config.TypeHuntarr, Kind: KindOrchestration,
		Label: "Orchestration", Purpose: "Huntarr hunt statistics (criteria.service=huntarr, operation=stats)",
		Maturity:     MaturityPartial,
		Capabilities: Capabilities{CanList: true},
	},
}

// mediaRoutes maps each media type to the backend type that serves it.
var mediaRoutes = map[intent.MediaType]string{
	intent.MediaTV:        config.TypeSonarr,
	intent.MediaMovie:     config.TypeRadarr,
	intent.MediaMusic:     config.TypeLidarr,
	intent.MediaAudiobook: config.TypeAudiobookshelf,
	intent.MediaBook:      config.TypeReadarr,
	intent.MediaAdult:     config.TypeWhisparr,
}

// ProductFor returns the static description of a backend type.
func ProductFor(backendType string) (Product, bool) {
	p, ok := products[backendType]
	return p, ok
}

// RouteFor returns the backend type serving a media type.
func RouteFor(mt intent.MediaType) (string, bool) {
	t, ok := mediaRoutes[mt]
	return t, ok
}
