package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newMatchesCmd creates the matches command.
func newMatchesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "Print recent match history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			resp, err := client.GetRecentMatches(ctx)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d matches", len(resp.Matches)))

			printMatches(resp.Matches)
			return nil
		},
	}
}
