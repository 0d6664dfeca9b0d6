package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/config"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/transport/terminal"
)

type PlayOptions struct {
	*RootOptions
	LogFile string
}

func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play in this terminal. Arrow keys or the mouse pick a column, enter,
space or a click drops the disc, 1-7 drop straight into that column.
n starts a new match, r resets the scores, q or esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), opts.Config, opts.LogFile)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write logs here instead of discarding them")
	return cmd
}

func runPlay(ctx context.Context, cfg *config.Config, logFile string) error {
	// the terminal belongs to the board while playing
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open log file", err)
		}
		defer f.Close()
		out = f
	}
	prev := log.Logger
	log.Logger = log.Output(out)
	defer func() { log.Logger = prev }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driver, store, err := openDriver(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ui := terminal.New(driver, cfg.CellSize)
	driver.OnSnapshot(ui.Notify)

	driverDone := make(chan error, 1)
	go func() { driverDone <- driver.Run(ctx) }()

	uiErr := ui.Run(ctx)
	cancel()
	<-driverDone

	if uiErr != nil {
		return fmt.Errorf("terminal: %w", uiErr)
	}
	return nil
}
