package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrmate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without contacting any backend.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configInitCmd.Flags().Bool("from-env", false, "Write the backends found in <TYPE>_URL/<TYPE>_API_KEY instead of the template")
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configCheckCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")
	fromEnv, _ := cmd.Flags().GetBool("from-env")

	var err error
	if fromEnv {
		cfg := config.FromEnv()
		if len(cfg.Backends) == 0 {
			return fmt.Errorf("no backends found in the environment, set e.g. %s", config.EnvHint(config.TypeSonarr))
		}
		err = cfg.Write(path, force)
	} else {
		err = config.WriteDefault(path, force)
	}
	if errors.Is(err, config.ErrExists) {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Wrote %s\n", path)
	if !fromEnv {
		_, _ = fmt.Fprintln(stdout, "Set SONARR_API_KEY and RADARR_API_KEY, or edit the [[backends]] entries.")
	}
	return nil
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	_, _ = fmt.Fprintf(stdout, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cfg)
	_, _ = fmt.Fprintln(stdout, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(e *config.ConfigError) {
	if len(e.Missing) > 0 {
		_, _ = fmt.Fprintln(stdout, "Missing environment variables:")
		for _, m := range e.Missing {
			_, _ = fmt.Fprintf(stdout, "  - %s\n", m)
		}
		_, _ = fmt.Fprintln(stdout)
	}

	if len(e.Errors) > 0 {
		_, _ = fmt.Fprintln(stdout, "Validation errors:")
		for _, err := range e.Errors {
			_, _ = fmt.Fprintf(stdout, "  - %s\n", err)
		}
		_, _ = fmt.Fprintln(stdout)
	}
}

func printConfigSummary(cfg *config.Config) {
	_, _ = fmt.Fprintln(stdout, "Configuration Summary:")
	_, _ = fmt.Fprintf(stdout, "  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	_, _ = fmt.Fprintf(stdout, "  Database:   %s\n", cfg.Database.Path)
	_, _ = fmt.Fprintf(stdout, "  LLM:        %s\n", cfg.LLM.Provider)

	backends := make([]string, 0, len(cfg.Backends))
	for _, b := range cfg.Backends {
		if b.Name == b.Type {
			backends = append(backends, b.Name)
			continue
		}
		backends = append(backends, fmt.Sprintf("%s (%s)", b.Name, b.Type))
	}
	_, _ = fmt.Fprintf(stdout, "  Backends:   %s\n", strings.Join(backends, ", "))
}
