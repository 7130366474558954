package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pongtrack/startuppong/pkg/buildinfo"
	"github.com/pongtrack/startuppong/pkg/pong"
)

// rootFlags holds the persistent flags shared by all commands.
type rootFlags struct {
	verbose   bool
	accountID string
	accessKey string
	config    string
	baseURL   string
}

// Execute runs the pong CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd(&rootFlags{}).ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands registered.
func newRootCmd(flags *rootFlags) *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "pong tracks your office ping-pong ladder on startuppong.com",
		Long:         `pong is a CLI for the startuppong.com ladder API: print the leaderboard, list recent matches, resolve player names to ids, and record match results.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&flags.accountID, "account-id", "", "startuppong account id (overrides env and config file)")
	root.PersistentFlags().StringVar(&flags.accessKey, "access-key", "", "startuppong access key (overrides env and config file)")
	root.PersistentFlags().StringVar(&flags.config, "config", "", "path to credentials file (default ~/.config/pong/config.toml)")
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "override the service base URL")

	root.AddCommand(newPlayersCmd(flags))
	root.AddCommand(newMatchesCmd(flags))
	root.AddCommand(newResolveCmd(flags))
	root.AddCommand(newAddCmd(flags))

	return root
}

// newClient builds a ladder client from the resolved credentials.
func (f *rootFlags) newClient() (*pong.Client, error) {
	account, err := loadAccount(f.accountID, f.accessKey, f.config)
	if err != nil {
		return nil, err
	}

	var opts []pong.Option
	if f.baseURL != "" {
		opts = append(opts, pong.WithBaseURL(f.baseURL))
	}
	return pong.NewClient(account, opts...), nil
}
