// Package registry discovers which backends are configured and reachable,
// and hands out adapters for them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrmate/internal/backend"
	"github.com/vmunix/arrmate/internal/backend/arr"
	"github.com/vmunix/arrmate/internal/backend/audiobookshelf"
	"github.com/vmunix/arrmate/internal/backend/bazarr"
	"github.com/vmunix/arrmate/internal/backend/huntarr"
	"github.com/vmunix/arrmate/internal/backend/lidarr"
	"github.com/vmunix/arrmate/internal/backend/plex"
	"github.com/vmunix/arrmate/internal/backend/radarr"
	"github.com/vmunix/arrmate/internal/backend/readarr"
	"github.com/vmunix/arrmate/internal/backend/sonarr"
	"github.com/vmunix/arrmate/internal/config"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/metrics"
)

// ErrUnknownBackend is returned by ClientByName for names that are not
// configured.
var ErrUnknownBackend = errors.New("unknown backend")

// Descriptor is the discovered state of one backend instance.
type Descriptor struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	URL          string       `json:"url"`
	MaskedKey    string       `json:"api_key"`
	Available    bool         `json:"available"`
	Version      string       `json:"version,omitempty"`
	Capabilities Capabilities `json:"capabilities"`
	Maturity     Maturity     `json:"maturity"`
	MediaType    string       `json:"media_type"`
	Kind         Kind         `json:"kind"`
	Error        string       `json:"error,omitempty"`
}

// Factory builds an adapter for a configured instance.
type Factory func(cfg config.BackendConfig, logger *slog.Logger) (backend.Client, error)

// Registry holds the configured instances and the last discovery snapshot.
type Registry struct {
	backends []config.BackendConfig
	factory  Factory
	metrics  *metrics.Metrics
	log      *slog.Logger

	mu       sync.RWMutex
	snapshot map[string]Descriptor
}

// Option configures a Registry.
type Option func(*Registry)

// WithFactory replaces the adapter factory (for testing).
func WithFactory(f Factory) Option {
	return func(r *Registry) {
		r.factory = f
	}
}

// WithMetrics records probe outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// New creates a registry over the configured backend instances.
func New(backends []config.BackendConfig, logger *slog.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		backends: backends,
		factory:  NewClient,
		log:      logger.With("component", "registry"),
		snapshot: make(map[string]Descriptor),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewClient is the default factory.
func NewClient(cfg config.BackendConfig, logger *slog.Logger) (backend.Client, error) {
	opts := []arr.Option{arr.WithTimeout(cfg.Timeout), arr.WithLogger(logger)}
	switch cfg.Type {
	case config.TypeSonarr:
		return sonarr.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypeRadarr, config.TypeWhisparr:
		return radarr.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypeLidarr:
		return lidarr.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypeReadarr:
		return readarr.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypeAudiobookshelf:
		return audiobookshelf.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypeBazarr:
		return bazarr.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypePlex:
		return plex.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	case config.TypeHuntarr:
		return huntarr.New(cfg.Name, cfg.URL, cfg.APIKey, opts...), nil
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnknownBackend, cfg.Type)
	}
}

// Discover probes every configured instance concurrently and replaces the
// snapshot once all probes have settled. A failing or panicking probe only
// marks its own instance unavailable.
func (r *Registry) Discover(ctx context.Context) map[string]Descriptor {
	start := time.Now()
	results := make([]Descriptor, len(r.backends))

	var g errgroup.Group
	for i, b := range r.backends {
		g.Go(func() error {
			results[i] = r.probe(ctx, b)
			return nil
		})
	}
	_ = g.Wait()

	snap := make(map[string]Descriptor, len(results))
	available := 0
	for _, d := range results {
		snap[d.Name] = d
		if d.Available {
			available++
		}
		r.metrics.SetBackend(d.Name, d.Type, d.Version, d.Available)
	}

	r.mu.Lock()
	r.snapshot = snap
	r.mu.Unlock()

	r.log.Info("discovery complete",
		"backends", len(results),
		"available", available,
		"duration_ms", time.Since(start).Milliseconds())

	return cloneSnapshot(snap)
}

func (r *Registry) probe(ctx context.Context, cfg config.BackendConfig) (d Descriptor) {
	d = describe(cfg)

	defer func() {
		if rec := recover(); rec != nil {
			d.Available = false
			d.Version = ""
			d.Error = fmt.Sprintf("probe panicked: %v", rec)
			r.log.Error("backend probe panicked", "backend", cfg.Name, "panic", rec)
		}
	}()

	if !cfg.Configured() {
		d.Error = "not configured"
		return d
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = arr.DefaultTimeout
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := r.factory(cfg, r.log)
	if err != nil {
		d.Error = err.Error()
		return d
	}
	defer func() { _ = client.Close() }()

	if !client.TestConnection(pctx) {
		d.Error = "connection failed"
		if pctx.Err() != nil {
			d.Error = fmt.Sprintf("timed out after %s", timeout)
		}
		r.log.Warn("backend unavailable", "backend", cfg.Name, "reason", d.Error)
		return d
	}
	d.Available = true

	version, err := client.Version(pctx)
	if err != nil {
		r.log.Debug("version lookup failed", "backend", cfg.Name, "error", err)
	} else {
		d.Version = version
	}
	return d
}

func describe(cfg config.BackendConfig) Descriptor {
	d := Descriptor{
		Name:      cfg.Name,
		Type:      cfg.Type,
		URL:       cfg.URL,
		MaskedKey: MaskKey(cfg.APIKey),
	}
	if p, ok := ProductFor(cfg.Type); ok {
		d.Capabilities = p.Capabilities
		d.Maturity = p.Maturity
		d.Kind = p.Kind
		d.MediaType = p.Label
	}
	return d
}

// MaskKey hides all but the last four characters of a credential.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "***"
	}
	return "***" + key[len(key)-4:]
}

// Snapshot returns a copy of the last discovery result.
func (r *Registry) Snapshot() map[string]Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSnapshot(r.snapshot)
}

// Descriptors returns the snapshot ordered by configuration order.
func (r *Registry) Descriptors() []Descriptor {
	snap := r.Snapshot()
	out := make([]Descriptor, 0, len(snap))
	for _, b := range r.backends {
		if d, ok := snap[b.Name]; ok {
			out = append(out, d)
		}
	}
	return out
}

func cloneSnapshot(in map[string]Descriptor) map[string]Descriptor {
	out := make(map[string]Descriptor, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// MediaClientFor returns an adapter for the first configured instance
// serving mt. The caller must Close it.
func (r *Registry) MediaClientFor(mt intent.MediaType) (backend.MediaClient, error) {
	backendType, ok := RouteFor(mt)
	if !ok {
		return nil, &intent.ConfigurationError{Msg: fmt.Sprintf("no backend serves media type %q", mt)}
	}

	cfg, ok := r.firstOfType(backendType)
	if !ok {
		return nil, &intent.ConfigurationError{
			Param: config.EnvHint(backendType),
			Msg:   fmt.Sprintf("%s is not configured for %s", backendType, mt.Noun()),
		}
	}

	client, err := r.factory(cfg, r.log)
	if err != nil {
		return nil, err
	}
	mc, ok := client.(backend.MediaClient)
	if !ok {
		_ = client.Close()
		return nil, fmt.Errorf("backend %s does not manage media", cfg.Name)
	}
	return mc, nil
}

// ClientByName returns an adapter for the named instance. The caller must
// Close it.
func (r *Registry) ClientByName(name string) (backend.Client, error) {
	for _, b := range r.backends {
		if strings.EqualFold(b.Name, name) || strings.EqualFold(b.Type, name) {
			if !b.Configured() {
				break
			}
			return r.factory(b, r.log)
		}
	}
	return nil, &intent.ConfigurationError{
		Param: envHintFor(name),
		Msg:   fmt.Sprintf("backend %q is not configured", name),
	}
}

// SubtitlesClient returns the first configured subtitle companion.
func (r *Registry) SubtitlesClient() (backend.Subtitles, error) {
	return clientOf[backend.Subtitles](r, config.TypeBazarr)
}

// MediaServerClient returns the first configured media server.
func (r *Registry) MediaServerClient() (backend.MediaServer, error) {
	return clientOf[backend.MediaServer](r, config.TypePlex)
}

// OrchestratorClient returns the first configured orchestrator.
func (r *Registry) OrchestratorClient() (backend.Orchestrator, error) {
	return clientOf[backend.Orchestrator](r, config.TypeHuntarr)
}

func clientOf[T backend.Client](r *Registry, backendType string) (T, error) {
	var zero T
	cfg, ok := r.firstOfType(backendType)
	if !ok {
		return zero, &intent.ConfigurationError{
			Param: config.EnvHint(backendType),
			Msg:   fmt.Sprintf("%s is not configured", backendType),
		}
	}
	client, err := r.factory(cfg, r.log)
	if err != nil {
		return zero, err
	}
	typed, ok := client.(T)
	if !ok {
		_ = client.Close()
		return zero, fmt.Errorf("backend %s has unexpected adapter %T", cfg.Name, client)
	}
	return typed, nil
}

func (r *Registry) firstOfType(backendType string) (config.BackendConfig, bool) {
	for _, b := range r.backends {
		if b.Type == backendType && b.Configured() {
			return b, true
		}
	}
	return config.BackendConfig{}, false
}

func envHintFor(name string) string {
	name = strings.ToLower(name)
	if _, ok := products[name]; ok {
		return config.EnvHint(name)
	}
	return ""
}
