package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"luqy/internal/ingest"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe FILE",
		Short: "Report how many measurements a file contains",
		Long: "Probe inspects only the head of an export file and reports its " +
			"measurement count, so callers can allocate one output per " +
			"measurement before parsing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			path := args[0]
			if !ingest.Matches(path) {
				return fmt.Errorf("%s is not a recognized export file (.txt, .csv, or .tsv)", path)
			}

			labels, err := ingest.NewService(cfg, logger).ProbeChildren(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(labels) == 0 {
				fmt.Fprintln(out, "1 measurement")
				return nil
			}
			fmt.Fprintf(out, "%d measurements (labels %s)\n", len(labels), strings.Join(labels, ", "))
			return nil
		},
	}
	return cmd
}
