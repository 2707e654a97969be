// Package app wires the command pipeline together from configuration.
package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	v1 "github.com/vmunix/arrmate/internal/api/v1"
	"github.com/vmunix/arrmate/internal/config"
	"github.com/vmunix/arrmate/internal/executor"
	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/llm"
	"github.com/vmunix/arrmate/internal/metrics"
	"github.com/vmunix/arrmate/internal/parser"
	"github.com/vmunix/arrmate/internal/pipeline"
	"github.com/vmunix/arrmate/internal/registry"
	"github.com/vmunix/arrmate/internal/resolver"
)

// SourceEnvironment is reported by LoadConfig when no file was found.
const SourceEnvironment = "environment"

// App holds the wired components.
type App struct {
	Config   *config.Config
	Metrics  *metrics.Metrics
	Registry *registry.Registry
	Pipeline *pipeline.Pipeline
	History  *history.Store // nil when history is disabled

	db     *sql.DB
	logger *slog.Logger
}

type options struct {
	extractor   llm.Extractor
	factory     registry.Factory
	skipHistory bool
}

// Option configures New.
type Option func(*options)

// WithExtractor replaces the configured LLM provider.
func WithExtractor(ex llm.Extractor) Option {
	return func(o *options) { o.extractor = ex }
}

// WithFactory replaces how the registry builds backend clients.
func WithFactory(f registry.Factory) Option {
	return func(o *options) { o.factory = f }
}

// WithoutHistory skips opening the history database.
func WithoutHistory() Option {
	return func(o *options) { o.skipHistory = true }
}

// New builds every component from cfg. Backends are not probed until
// Registry.Discover is called.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if logger == nil {
		logger = slog.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Metrics: metrics.New(), logger: logger}

	regOpts := []registry.Option{registry.WithMetrics(a.Metrics)}
	if o.factory != nil {
		regOpts = append(regOpts, registry.WithFactory(o.factory))
	}
	a.Registry = registry.New(cfg.Backends, logger, regOpts...)

	ex := o.extractor
	if ex == nil {
		var err error
		if ex, err = llm.New(cfg.LLM, logger); err != nil {
			return nil, err
		}
	}
	p, err := parser.New(ex, a.Registry, logger)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	pipeOpts := []pipeline.Option{
		pipeline.WithMetrics(a.Metrics),
		pipeline.WithLogger(logger),
	}
	if !o.skipHistory && cfg.Database.Path != "" {
		db, err := history.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.History = history.NewStore(db)
		pipeOpts = append(pipeOpts, pipeline.WithHistory(a.History))
	}

	a.Pipeline = pipeline.New(
		p,
		resolver.New(a.Registry, logger),
		executor.New(a.Registry, logger),
		pipeOpts...,
	)
	return a, nil
}

// Handler returns the HTTP API with request logging.
func (a *App) Handler(apiKey, version string) (http.Handler, error) {
	deps := v1.ServerDeps{
		Pipeline: a.Pipeline,
		Registry: a.Registry,
		Metrics:  a.Metrics,
	}
	if a.History != nil {
		deps.History = a.History
	}
	srv, err := v1.New(deps, v1.Config{APIKey: apiKey, Version: version})
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	return v1.LogRequests(mux, a.logger.With("component", "http")), nil
}

// Close releases the history database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// LoadConfig loads path when given, else the discovered config file. When no
// file exists anywhere it falls back to defaults plus environment variables. It returns the source
// the configuration came from.
func LoadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.FromEnv(), SourceEnvironment, nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
