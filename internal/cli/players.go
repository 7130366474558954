package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPlayersCmd creates the players command.
func newPlayersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Print the current leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			resp, err := client.GetPlayers(ctx)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d players", len(resp.Players)))

			printLeaderboard(resp.Players)
			return nil
		},
	}
}
