package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flashscribe/internal/config"
	"flashscribe/internal/deps"
)

func newDepsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Default(cfg.Extraction.FFmpegBinary))

			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				state := "ok"
				detail := status.Description
				if !status.Available {
					state = "missing"
					if status.Detail != "" {
						detail = status.Detail
					}
					if !status.Optional {
						missingRequired = true
					}
				}
				rows = append(rows, []string{status.Name, status.Command, state, detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if missingRequired {
				return fmt.Errorf("required external tools are missing")
			}
			return nil
		},
	}
}
