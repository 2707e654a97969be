package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vmunix/arrmate/internal/pipeline"
)

var errCommandFailed = errors.New("command failed")

var runCmd = &cobra.Command{
	Use:   "run <command...>",
	Short: "Run a natural-language command",
	Example: `  arrmate run delete episodes 1 and 2 of Angel season 1
  arrmate run --dry-run add the movie Heat`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		resp, err := s.Run(cmd.Context(), strings.Join(args, " "), dryRun)
		if err != nil {
			return err
		}
		if jsonOutput {
			if err := printJSON(resp); err != nil {
				return err
			}
		} else {
			printResponse(resp)
		}
		if !resp.Result.Success {
			return errCommandFailed
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <command...>",
	Short: "Show the intent a command parses to, without running it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		out, err := s.Parse(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out)
		}
		printParse(out)
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "Parse and resolve, but do not execute")
	rootCmd.AddCommand(runCmd, parseCmd)
}

func printResponse(resp pipeline.Response) {
	status := colorize(stdout, text.FgGreen, "ok")
	if !resp.Result.Success {
		status = colorize(stdout, text.FgRed, "failed")
	}
	if resp.DryRun {
		status = colorize(stdout, text.FgYellow, "dry run")
	}
	_, _ = fmt.Fprintf(stdout, "[%s] %s\n", status, resp.Result.Message)

	for _, e := range resp.Result.Errors {
		_, _ = fmt.Fprintf(stdout, "  - %s\n", e)
	}
	if titles, ok := resp.Result.Data["titles"].([]any); ok {
		for _, t := range titles {
			_, _ = fmt.Fprintf(stdout, "  %v\n", t)
		}
	}
}

func printParse(out parseOutput) {
	in := out.Intent
	if in == nil {
		_, _ = fmt.Fprintln(stdout, "No intent")
		return
	}
	_, _ = fmt.Fprintf(stdout, "Action:     %s\n", in.Action)
	_, _ = fmt.Fprintf(stdout, "Media type: %s\n", in.MediaType)
	if in.Title != "" {
		_, _ = fmt.Fprintf(stdout, "Title:      %s\n", in.Title)
	}
	if in.Season != nil {
		_, _ = fmt.Fprintf(stdout, "Season:     %d\n", *in.Season)
	}
	if len(in.Episodes) > 0 {
		_, _ = fmt.Fprintf(stdout, "Episodes:   %v\n", in.Episodes)
	}
	keys := make([]string, 0, len(in.Criteria))
	for k := range in.Criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(stdout, "Criteria:   %s=%v\n", k, in.Criteria[k])
	}
	if len(out.Violations) > 0 {
		_, _ = fmt.Fprintln(stdout, "\nInvalid:")
		for _, v := range out.Violations {
			_, _ = fmt.Fprintf(stdout, "  - %s\n", v)
		}
	}
}
