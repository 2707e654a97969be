// Package server runs the HTTP API and its background jobs.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// Config for the server runner.
type Config struct {
	Addr            string
	RefreshInterval time.Duration // zero disables periodic discovery
	ShutdownTimeout time.Duration
}

// RefreshFunc re-probes backends.
type RefreshFunc func(ctx context.Context)

// Runner serves HTTP and periodically refreshes backend discovery.
type Runner struct {
	handler http.Handler
	refresh RefreshFunc
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner. refresh may be nil.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger, refresh RefreshFunc) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		refresh: refresh,
		config:  cfg,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return err
	}
	return r.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), r.config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if r.refresh != nil && r.config.RefreshInterval > 0 {
		g.Go(func() error {
			r.refreshLoop(gctx)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(r.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.logger.Debug("refreshing backend discovery")
			r.refresh(ctx)
		}
	}
}
