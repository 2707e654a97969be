package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vmunix/arrmate/internal/app"
	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/pipeline"
	"github.com/vmunix/arrmate/internal/registry"
)

// parseOutput is what the parse command reports.
type parseOutput struct {
	Intent     *intent.Intent `json:"intent"`
	Violations []string       `json:"violations,omitempty"`
}

// session runs commands either in-process or against arrmated.
type session interface {
	Run(ctx context.Context, text string, dryRun bool) (pipeline.Response, error)
	Parse(ctx context.Context, text string) (parseOutput, error)
	Services(ctx context.Context, refresh bool) ([]registry.Descriptor, error)
	History(ctx context.Context, limit int) ([]*history.Entry, error)
	Close() error
}

// openSession honours --server, else builds the pipeline locally.
func openSession(ctx context.Context) (session, error) {
	if serverURL != "" {
		return &remoteSession{client: NewClient(serverURL, apiKey)}, nil
	}

	cfg, _, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	a, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.Registry.Discover(ctx)
	return &localSession{app: a}, nil
}

type localSession struct {
	app *app.App
}

func (s *localSession) Run(ctx context.Context, text string, dryRun bool) (pipeline.Response, error) {
	return s.app.Pipeline.Run(ctx, text, dryRun), nil
}

func (s *localSession) Parse(ctx context.Context, text string) (parseOutput, error) {
	in, err := s.app.Pipeline.Parse(ctx, text)
	if v, ok := intent.AsValidation(err); ok {
		return parseOutput{Intent: in, Violations: v.Violations}, nil
	}
	if err != nil {
		return parseOutput{}, err
	}
	return parseOutput{Intent: in}, nil
}

func (s *localSession) Services(ctx context.Context, refresh bool) ([]registry.Descriptor, error) {
	if refresh {
		s.app.Registry.Discover(ctx)
	}
	return s.app.Registry.Descriptors(), nil
}

func (s *localSession) History(ctx context.Context, limit int) ([]*history.Entry, error) {
	if s.app.History == nil {
		return nil, nil
	}
	return s.app.History.List(ctx, history.Filter{Limit: limit})
}

func (s *localSession) Close() error { return s.app.Close() }

type remoteSession struct {
	client *Client
}

func (s *remoteSession) Run(ctx context.Context, text string, dryRun bool) (pipeline.Response, error) {
	return s.client.Execute(ctx, text, dryRun)
}

func (s *remoteSession) Parse(ctx context.Context, text string) (parseOutput, error) {
	return s.client.Parse(ctx, text)
}

func (s *remoteSession) Services(ctx context.Context, refresh bool) ([]registry.Descriptor, error) {
	resp, err := s.client.Services(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return resp.Services, nil
}

func (s *remoteSession) History(ctx context.Context, limit int) ([]*history.Entry, error) {
	resp, err := s.client.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (s *remoteSession) Close() error { return nil }
