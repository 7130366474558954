package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// newResolveCmd creates the resolve command.
func newResolveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <fragment>...",
		Short: "Resolve player name fragments to numeric ids",
		Long: `Resolve one or more display-name fragments to player ids.

Matching is case-sensitive and takes the first player whose name contains
the fragment, in leaderboard order. An unmatched fragment fails the whole
command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			ids, err := client.PlayerIDs(ctx, args)
			if err != nil {
				return err
			}

			for i, fragment := range args {
				printKeyValue(fragment, strconv.Itoa(ids[i]))
			}
			return nil
		},
	}
}
