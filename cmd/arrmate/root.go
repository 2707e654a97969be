package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	serverURL  string
	apiKey     string
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "arrmate",
	Short: "Natural-language control for your *arr media stack",
	Long: `arrmate - natural-language control for your *arr media stack

Commands are parsed by an LLM into a structured intent, resolved against
your library and executed on Sonarr, Radarr, Lidarr and friends.

By default commands run in-process using the local config. Pass --server
to send them to a running 'arrmated' instead.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered, else environment)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", os.Getenv("ARRMATE_SERVER"), "arrmated URL; empty runs in-process")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("ARRMATE_API_KEY"), "API key for --server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages to stderr")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrmate {{.Version}}\n")
}
