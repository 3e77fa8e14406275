package cli

import (
	"github.com/spf13/cobra"
)

type turnFlags struct {
	Stockditsch bool `json:"stockditsch"`
	Windditsch  bool `json:"windditsch"`
	Unterweite  bool `json:"unterweite"`
	KohleWeg    bool `json:"kohleweg"`
	HeideKaputt bool `json:"heidekaputt"`
	StockKaputt bool `json:"stockkaputt"`
}

func newTurnCmd() *cobra.Command {
	var flags turnFlags

	cmd := &cobra.Command{
		Use:   "turn",
		Short: "Resolve the current player's turn",
		Long: `Resolve the current player's turn with the selected events.

Without any event flag the turn is skipped and play moves on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TurnResult
			if err := client.Post(cfg.TeamPath()+"/turns", flags, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.Stockditsch, "stockditsch", false, "Score a Stockditsch")
	cmd.Flags().BoolVar(&flags.Windditsch, "windditsch", false, "Score a Windditsch")
	cmd.Flags().BoolVar(&flags.Unterweite, "unterweite", false, "Score an Unterweite")
	cmd.Flags().BoolVar(&flags.KohleWeg, "kohleweg", false, "Penalty: Kohle weg")
	cmd.Flags().BoolVar(&flags.HeideKaputt, "heidekaputt", false, "Penalty: Heide kaputt")
	cmd.Flags().BoolVar(&flags.StockKaputt, "stockkaputt", false, "Penalty: Stock kaputt")

	return cmd
}

func newPflichtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pflicht",
		Short: "Record mandatory attempts",
	}

	cmd.AddCommand(newPflichtOutcomeCmd("success", "success", "Record a successful mandatory attempt"))
	cmd.AddCommand(newPflichtOutcomeCmd("fail", "failure", "Record a failed mandatory attempt"))

	return cmd
}

func newPflichtOutcomeCmd(use, outcome, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <player-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"outcome": outcome}

			var result Player
			if err := client.Post(playerPath(args[0])+"/pflicht", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
