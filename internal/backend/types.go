package backend

// Item is a library item or catalog entry.
type Item struct {
	ID        string         `json:"id,omitempty"`         // library id, empty for catalog entries
	CatalogID string         `json:"catalog_id,omitempty"` // tvdb/tmdb/musicbrainz id
	Title     string         `json:"title"`
	Year      int            `json:"year,omitempty"`
	Raw       map[string]any `json:"-"`
}

// InLibrary reports whether the item is managed by the backend.
func (i Item) InLibrary() bool { return i.ID != "" }

// Episode is one episode of a series. FileID is empty when the episode has
// no file on disk.
type Episode struct {
	ID     string         `json:"id"`
	Season int            `json:"season"`
	Number int            `json:"number"`
	Title  string         `json:"title,omitempty"`
	FileID string         `json:"file_id,omitempty"`
	Raw    map[string]any `json:"-"`
}

// Profile is a quality profile.
type Profile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Folder is a root folder items are stored under.
type Folder struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// AddRequest asks a backend to start managing a catalog entry.
type AddRequest struct {
	Item       Item
	ProfileID  int
	RootFolder string
	// MetadataProfileID is required by the music and book backends.
	MetadataProfileID int
	Monitored         bool
	SearchOnAdd       bool
}

// Section is a media-server library section.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Session is an active playback session on a media server.
type Session struct {
	Title  string `json:"title"`
	Type   string `json:"type,omitempty"`
	User   string `json:"user,omitempty"`
	Player string `json:"player,omitempty"`
	State  string `json:"state,omitempty"`
}
