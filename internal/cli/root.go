package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/config"
)

// RootOptions holds global flags and the configuration they override.
type RootOptions struct {
	Port    string
	Store   string
	Verbose bool

	Config *config.Config
}

// NewRootCommand creates the root command for the connect4 CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "connect4",
		Short: "Hot-seat Connect Four",
		Long: `Two players take turns on one device, in a browser or in the terminal.
Scores carry over between matches and are kept in the configured store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Port, "port", "", "HTTP port (overrides PORT)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "score store: memory|sqlite|postgres|redis (overrides SCORE_STORE)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewScoresCommand(opts))

	return cmd
}

// load reads the environment, applies flag overrides and sets the log
// level.
func (o *RootOptions) load(cmd *cobra.Command) error {
	cfg := config.LoadConfig()

	if cmd.Flags().Changed("port") {
		cfg.Port = o.Port
	}
	if cmd.Flags().Changed("store") {
		cfg.ScoreStore = o.Store
	}
	if o.Verbose {
		cfg.LogLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.Config = cfg
	return nil
}
