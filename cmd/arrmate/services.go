package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vmunix/arrmate/internal/registry"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List configured backends and whether they are reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		descs, err := s.Services(cmd.Context(), refresh)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(descs)
		}
		printServices(descs)
		return nil
	},
}

func init() {
	servicesCmd.Flags().Bool("refresh", false, "Re-probe every backend first")
	rootCmd.AddCommand(servicesCmd)
}

func printServices(descs []registry.Descriptor) {
	if len(descs) == 0 {
		_, _ = fmt.Fprintln(stdout, "No backends configured")
		return
	}

	rows := make([][]string, 0, len(descs))
	for _, d := range descs {
		status := colorize(stdout, text.FgGreen, "up")
		if !d.Available {
			status = colorize(stdout, text.FgRed, "down")
		}
		rows = append(rows, []string{d.Name, d.Type, d.MediaType, status, d.Version, d.URL})
	}
	_, _ = fmt.Fprintln(stdout, renderTable(stdout, []string{"NAME", "TYPE", "MEDIA", "STATUS", "VERSION", "URL"}, rows))
}
