package cli

import (
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the selected team's scoring values",
	}

	cmd.AddCommand(newSettingsGetCmd())
	cmd.AddCommand(newSettingsSetCmd())

	return cmd
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show scoring values",
		RunE: func(cmd *cobra.Command, args []string) error {
			var team Team
			if err := client.Get(cfg.TeamPath(), &team); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(team.Settings)
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var updated Settings

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change scoring values; unset flags keep their current value",
		RunE: func(cmd *cobra.Command, args []string) error {
			var team Team
			if err := client.Get(cfg.TeamPath(), &team); err != nil {
				return err
			}

			settings := team.Settings
			flags := cmd.Flags()
			if flags.Changed("stockditsch") {
				settings.PointsStockditsch = updated.PointsStockditsch
			}
			if flags.Changed("windditsch") {
				settings.PointsWindditsch = updated.PointsWindditsch
			}
			if flags.Changed("unterweite") {
				settings.PointsUnterweite = updated.PointsUnterweite
			}
			if flags.Changed("kohleweg") {
				settings.EuroKohleWeg = updated.EuroKohleWeg
			}
			if flags.Changed("heidekaputt") {
				settings.EuroHeideKaputt = updated.EuroHeideKaputt
			}
			if flags.Changed("stockkaputt") {
				settings.EuroStockKaputt = updated.EuroStockKaputt
			}
			if flags.Changed("pflicht") {
				settings.EuroPflicht = updated.EuroPflicht
			}

			var result Team
			if err := client.Put(cfg.TeamPath()+"/settings", settings, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result.Settings)
			return nil
		},
	}

	cmd.Flags().IntVar(&updated.PointsStockditsch, "stockditsch", 0, "Points for a Stockditsch")
	cmd.Flags().IntVar(&updated.PointsWindditsch, "windditsch", 0, "Points for a Windditsch")
	cmd.Flags().IntVar(&updated.PointsUnterweite, "unterweite", 0, "Points for an Unterweite")
	cmd.Flags().Float64Var(&updated.EuroKohleWeg, "kohleweg", 0, "Euro for Kohle weg")
	cmd.Flags().Float64Var(&updated.EuroHeideKaputt, "heidekaputt", 0, "Euro for Heide kaputt")
	cmd.Flags().Float64Var(&updated.EuroStockKaputt, "stockkaputt", 0, "Euro for Stock kaputt")
	cmd.Flags().Float64Var(&updated.EuroPflicht, "pflicht", 0, "Euro per failed mandatory attempt")

	return cmd
}
