package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrmate/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently run commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		entries, err := s.History(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if jsonOutput {
			if entries == nil {
				entries = []*history.Entry{}
			}
			return printJSON(entries)
		}
		printHistory(entries)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}

func printHistory(entries []*history.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(stdout, "No history")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		result := "ok"
		switch {
		case e.DryRun:
			result = "dry run"
		case !e.Result.Success:
			result = "failed"
		}
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Command,
			result,
			e.Result.Message,
		})
	}
	_, _ = fmt.Fprintln(stdout, renderTable(stdout, []string{"TIME", "COMMAND", "RESULT", "MESSAGE"}, rows))
}
