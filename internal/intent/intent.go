// Package intent defines the structured form of a user command and the
// normalized result of executing it.
package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action is what the user wants done.
type Action string

const (
	ActionRemove           Action = "remove"
	ActionDelete           Action = "delete"
	ActionSearch           Action = "search"
	ActionAdd              Action = "add"
	ActionUpgrade          Action = "upgrade"
	ActionList             Action = "list"
	ActionInfo             Action = "info"
	ActionDownloadSubtitle Action = "download_subtitle"
	ActionSyncSubtitles    Action = "sync_subtitles"
)

// Actions lists every action in the order the extraction schema presents them.
var Actions = []Action{
	ActionRemove, ActionDelete, ActionSearch, ActionAdd, ActionUpgrade,
	ActionList, ActionInfo, ActionDownloadSubtitle, ActionSyncSubtitles,
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// MediaType is the kind of media an intent targets.
type MediaType string

const (
	MediaTV        MediaType = "tv"
	MediaMovie     MediaType = "movie"
	MediaMusic     MediaType = "music"
	MediaAudiobook MediaType = "audiobook"
	MediaBook      MediaType = "book"
	MediaAdult     MediaType = "adult"
)

// MediaTypes lists every media type.
var MediaTypes = []MediaType{MediaTV, MediaMovie, MediaMusic, MediaAudiobook, MediaBook, MediaAdult}

// Valid reports whether m is a known media type.
func (m MediaType) Valid() bool {
	for _, known := range MediaTypes {
		if m == known {
			return true
		}
	}
	return false
}

// Noun returns a human-readable plural for result messages.
func (m MediaType) Noun() string {
	switch m {
	case MediaTV:
		return "TV show(s)"
	case MediaMovie, MediaAdult:
		return "movie(s)"
	case MediaMusic:
		return "artist(s)"
	case MediaAudiobook:
		return "audiobook(s)"
	case MediaBook:
		return "author(s)"
	default:
		return "item(s)"
	}
}

// Recognized criteria keys.
const (
	CriteriaLanguage  = "language"
	CriteriaQuality   = "quality"
	CriteriaYear      = "year"
	CriteriaService   = "service"
	CriteriaOperation = "operation"
)

// Criteria is an open set of search and routing hints.
type Criteria map[string]any

// String returns the value for key rendered as a string, or "" if absent.
func (c Criteria) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// RefKind tags the life stage of a backend identifier.
type RefKind string

const (
	RefUnresolved RefKind = "unresolved"
	RefCatalog    RefKind = "catalog"
	RefLibrary    RefKind = "library"
)

// Ref is a backend identifier tagged with where it came from. A catalog id
// names an entry in the backend's external metadata source and must only be
// submitted for creation; a library id names an item the backend manages.
type Ref struct {
	kind RefKind
	id   string
}

// LibraryRef returns a reference to an item already in a backend library.
func LibraryRef(id string) Ref { return Ref{kind: RefLibrary, id: id} }

// CatalogRef returns a reference to an external catalog entry.
func CatalogRef(id string) Ref { return Ref{kind: RefCatalog, id: id} }

// Kind returns the reference kind.
func (r Ref) Kind() RefKind {
	if r.kind == "" {
		return RefUnresolved
	}
	return r.kind
}

// ID returns the raw identifier; empty when unresolved.
func (r Ref) ID() string { return r.id }

// IsResolved reports whether r carries an identifier.
func (r Ref) IsResolved() bool { return r.Kind() != RefUnresolved }

// IsLibrary reports whether r names a library item.
func (r Ref) IsLibrary() bool { return r.kind == RefLibrary }

// IsCatalog reports whether r names a catalog entry.
func (r Ref) IsCatalog() bool { return r.kind == RefCatalog }

func (r Ref) String() string {
	if !r.IsResolved() {
		return string(RefUnresolved)
	}
	return string(r.kind) + ":" + r.id
}

// MarshalJSON renders the reference as {"kind": ..., "id": ...}.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind RefKind `json:"kind"`
		ID   string  `json:"id,omitempty"`
	}{r.Kind(), r.id})
}

// ErrAlreadyResolved is returned when an identifier is written twice.
var ErrAlreadyResolved = errors.New("identifier already resolved")

// EpisodeFile links one episode of the requested season to its file.
// FileID is empty when the episode has no file on disk.
type EpisodeFile struct {
	EpisodeID string
	Number    int
	FileID    string
}

// Intent is the structured form of a user command.
type Intent struct {
	Action    Action    `json:"action"`
	MediaType MediaType `json:"media_type"`
	Title     string    `json:"title,omitempty"`
	Season    *int      `json:"season,omitempty"`
	Episodes  []int     `json:"episodes,omitempty"`
	Criteria  Criteria  `json:"criteria,omitempty"`

	// SeasonEpisodes is the episode listing for Season, prefetched during
	// enrichment so execution does not fetch it twice.
	SeasonEpisodes []EpisodeFile `json:"-"`

	item   Ref
	series Ref
}

// Item returns the resolved item reference.
func (in *Intent) Item() Ref { return in.item }

// Series returns the resolved owning-series reference (TV only).
func (in *Intent) Series() Ref { return in.series }

// ResolveItem records the item identifier. It may be called once.
func (in *Intent) ResolveItem(ref Ref) error {
	if in.item.IsResolved() {
		return fmt.Errorf("item: %w", ErrAlreadyResolved)
	}
	if !ref.IsResolved() || ref.id == "" {
		return errors.New("item: empty reference")
	}
	in.item = ref
	return nil
}

// ResolveSeries records the library series identifier. It may be called once.
func (in *Intent) ResolveSeries(id string) error {
	if in.series.IsResolved() {
		return fmt.Errorf("series: %w", ErrAlreadyResolved)
	}
	if id == "" {
		return errors.New("series: empty identifier")
	}
	in.series = LibraryRef(id)
	return nil
}

// HasSeason reports whether a season was given.
func (in *Intent) HasSeason() bool { return in.Season != nil }

// Service returns the explicit backend routing override, if any.
func (in *Intent) Service() string {
	return strings.ToLower(in.Criteria.String(CriteriaService))
}

// Operation returns the backend-specific sub-action, if any.
func (in *Intent) Operation() string {
	return strings.ToLower(in.Criteria.String(CriteriaOperation))
}

// DisplayTitle returns the title for messages, or a placeholder.
func (in *Intent) DisplayTitle() string {
	if in.Title == "" {
		return "(untitled)"
	}
	return in.Title
}

// MarshalJSON includes the resolved references alongside the public fields.
func (in Intent) MarshalJSON() ([]byte, error) {
	type plain Intent
	return json.Marshal(struct {
		plain
		Item   *Ref `json:"item,omitempty"`
		Series *Ref `json:"series,omitempty"`
	}{
		plain:  plain(in),
		Item:   refPtr(in.item),
		Series: refPtr(in.series),
	})
}

func refPtr(r Ref) *Ref {
	if !r.IsResolved() {
		return nil
	}
	return &r
}
