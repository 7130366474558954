package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pongtrack/startuppong/pkg/errors"
)

// newAddCmd creates the add command.
func newAddCmd(flags *rootFlags) *cobra.Command {
	var useIDs bool

	cmd := &cobra.Command{
		Use:   "add <winner> <loser>",
		Short: "Record a match result",
		Long: `Record a completed match, winner first.

By default the arguments are name fragments resolved against the
leaderboard. Pass --ids to supply numeric player ids directly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			winner, loser := args[0], args[1]

			if useIDs {
				winnerID, err := strconv.Atoi(winner)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "winner id %q is not a number", winner)
				}
				loserID, err := strconv.Atoi(loser)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "loser id %q is not a number", loser)
				}
				if err := client.AddMatch(ctx, winnerID, loserID); err != nil {
					return err
				}
			} else {
				if err := client.AddMatchWithNames(ctx, winner, loser); err != nil {
					return err
				}
			}

			logger.Debug("match recorded", "winner", winner, "loser", loser)
			printSuccess("Recorded: %s def. %s", winner, loser)
			printDetail("Run '%s matches' to see the updated history", appName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useIDs, "ids", false, "treat arguments as numeric player ids")
	return cmd
}
