package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster commands for the selected team",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func playerPath(playerID string) string {
	return cfg.TeamPath() + "/players/" + url.PathEscape(playerID)
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a player; without a name a default is generated",
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if len(args) > 0 {
				body = map[string]string{"name": strings.Join(args, " ")}
			}

			var result Player
			if err := client.Post(cfg.TeamPath()+"/players", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPlayerRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <player-id> <name>",
		Short: "Rename a player",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"name": strings.Join(args[1:], " ")}

			var result Player
			if err := client.Patch(playerPath(args[0]), body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(playerPath(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Removed player " + args[0])
			return nil
		},
	}
}
