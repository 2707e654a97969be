package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/vmunix/arrmate/internal/app"
	"github.com/vmunix/arrmate/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string, refresh time.Duration) error {
	cfg, source, err := app.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	logger.Info("config loaded", "source", source, "backends", len(cfg.Backends))

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Registry.Discover(ctx)

	handler, err := a.Handler(cfg.Server.APIKey, version)
	if err != nil {
		return err
	}
	if cfg.Server.APIKey == "" {
		logger.Warn("api_key not set, HTTP API is unauthenticated")
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	runner := server.NewRunner(handler, server.Config{
		Addr:            addr,
		RefreshInterval: refresh,
	}, logger.With("component", "server"), func(ctx context.Context) {
		a.Registry.Discover(ctx)
	})

	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
