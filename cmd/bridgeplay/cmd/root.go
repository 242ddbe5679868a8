package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ninetrick/bridgeplay/config"
)

// rootState carries the flag-bound config and logger through to each
// subcommand's RunE, materialized once in the root's
// PersistentPreRunE — mirrors discordwell-OnChainPoker's
// apps/cosmos/cmd/ocpd/cmd/root.go NewRootCmd pattern of resolving a
// shared client context in PersistentPreRunE before any subcommand
// runs, simplified down to this repo's much smaller surface.
type rootState struct {
	cfg config.Config
	log zerolog.Logger
}

// NewRootCmd builds the bridgeplay root command and registers its
// subcommands. Called once from main.
func NewRootCmd() *cobra.Command {
	v := config.New()
	state := &rootState{}

	root := &cobra.Command{
		Use:           "bridgeplay",
		Short:         "Partial-information contract-bridge play engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			state.cfg = cfg

			verbose, _ := cmd.Flags().GetBool("verbose")
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			state.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	if err := config.BindFlags(root, v); err != nil {
		panic(err)
	}

	root.AddCommand(newPlayCmd(state))
	root.AddCommand(newSampleCmd(state))
	return root
}
