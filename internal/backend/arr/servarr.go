package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
)

// Servarr implements the endpoints shared by the Servarr family. The
// adapters embed it and add their resource-specific calls.
type Servarr struct {
	*Client
	prefix string // "api/v3" or "api/v1"
}

// NewServarr creates a Servarr client speaking the given API prefix.
func NewServarr(name, baseURL, apiKey, prefix string, opts ...Option) *Servarr {
	return &Servarr{
		Client: New(name, baseURL, APIKeyHeader("X-Api-Key", apiKey), opts...),
		prefix: prefix,
	}
}

// Path joins the API prefix with the given segments.
func (s *Servarr) Path(segments ...string) string {
	p := s.prefix
	for _, seg := range segments {
		p += "/" + url.PathEscape(seg)
	}
	return p
}

// TestConnection reports whether system/status answers.
func (s *Servarr) TestConnection(ctx context.Context) bool {
	return s.Ping(ctx, s.Path("system", "status"))
}

// Version returns the version reported by system/status.
func (s *Servarr) Version(ctx context.Context) (string, error) {
	var status struct {
		Version string `json:"version"`
	}
	if err := s.Get(ctx, s.Path("system", "status"), nil, &status); err != nil {
		return "", err
	}
	return status.Version, nil
}

// QualityProfiles lists the configured quality profiles.
func (s *Servarr) QualityProfiles(ctx context.Context) ([]backend.Profile, error) {
	var profiles []backend.Profile
	if err := s.Get(ctx, s.Path("qualityprofile"), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// MetadataProfiles lists metadata profiles (Lidarr and Readarr only).
func (s *Servarr) MetadataProfiles(ctx context.Context) ([]backend.Profile, error) {
	var profiles []backend.Profile
	if err := s.Get(ctx, s.Path("metadataprofile"), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// RootFolders lists the configured root folders.
func (s *Servarr) RootFolders(ctx context.Context) ([]backend.Folder, error) {
	var folders []backend.Folder
	if err := s.Get(ctx, s.Path("rootfolder"), nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// Command posts a named command (SeriesSearch, MoviesSearch, ...) and
// returns the queued command record.
func (s *Servarr) Command(ctx context.Context, body map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := s.Post(ctx, s.Path("command"), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List decodes GET {prefix}/{resource} as a list of raw objects.
func (s *Servarr) List(ctx context.Context, resource string, query url.Values) ([]Raw, error) {
	var raws []Raw
	if err := s.Get(ctx, s.Path(resource), query, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

// Lookup queries {prefix}/{resource}/lookup?term=.
func (s *Servarr) Lookup(ctx context.Context, resource, term string) ([]Raw, error) {
	var raws []Raw
	q := url.Values{"term": {term}}
	if err := s.Get(ctx, s.Path(resource, "lookup"), q, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

// One decodes GET {prefix}/{resource}/{id}.
func (s *Servarr) One(ctx context.Context, resource, id string) (Raw, error) {
	var raw Raw
	if err := s.Get(ctx, s.Path(resource, id), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Remove issues DELETE {prefix}/{resource}/{id}?deleteFiles=.
func (s *Servarr) Remove(ctx context.Context, resource, id string, deleteFiles bool) error {
	q := url.Values{"deleteFiles": {strconv.FormatBool(deleteFiles)}}
	return s.Delete(ctx, s.Path(resource, id), q)
}

// Create posts body to {prefix}/{resource} and returns the created object.
func (s *Servarr) Create(ctx context.Context, resource string, body Raw) (Raw, error) {
	var out Raw
	if err := s.Post(ctx, s.Path(resource), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddBody builds the creation payload for a catalog entry: the lookup
// record with the library settings applied on top.
func AddBody(req backend.AddRequest) (Raw, error) {
	if req.ProfileID == 0 || req.RootFolder == "" {
		return nil, fmt.Errorf("add %q: quality profile and root folder are required", req.Item.Title)
	}
	body := Clone(req.Item.Raw)
	body["title"] = req.Item.Title
	body["qualityProfileId"] = req.ProfileID
	body["rootFolderPath"] = req.RootFolder
	body["monitored"] = req.Monitored
	if req.MetadataProfileID != 0 {
		body["metadataProfileId"] = req.MetadataProfileID
	}
	return body, nil
}
