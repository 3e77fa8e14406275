package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the selected team's standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard
			if err := client.Get(cfg.TeamPath()+"/leaderboard", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the leaderboard as a spreadsheet or chart",
	}

	cmd.AddCommand(newExportFormatCmd("xlsx", "Export the leaderboard as an Excel workbook"))
	cmd.AddCommand(newExportFormatCmd("png", "Export the leaderboard as a bar chart"))

	return cmd
}

func newExportFormatCmd(format, short string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   format,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.GetRaw(cfg.TeamPath() + "/leaderboard." + format)
			if err != nil {
				return err
			}

			if err := os.WriteFile(file, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", file, err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Wrote %d bytes to %s", len(data), file))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "rangliste."+format, "Output file")

	return cmd
}
