package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/harness"
)

type ReplayOptions struct {
	*RootOptions
	Quiet bool
}

func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>...",
		Short: "Replay scripted matches and check their expectations",
		Long: `Play each scenario file on a fresh table, print the final board and
check the expected outcome, winner, scores and rejected moves.

Exit codes:
  0 - every scenario matched
  1 - at least one scenario did not match
  2 - a scenario file could not be read or a disc never landed

Examples:
  connect4 replay scenarios/column_three_win.yaml
  connect4 replay --quiet scenarios/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "only print pass/fail lines")
	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	runOpts := harness.Options{CellSize: opts.Config.CellSize, Step: opts.Config.AnimStep}

	failed := 0
	for _, path := range paths {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			return WrapExitError(ExitCommandError, path, err)
		}

		result, err := harness.Run(scenario, runOpts)
		if err != nil {
			return WrapExitError(ExitCommandError, scenario.Name, err)
		}

		if !opts.Quiet {
			fmt.Fprint(out, harness.Render(scenario.Name, result))
		}
		if err := harness.Check(scenario, result); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %v\n", err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", scenario.Name)
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", failed, len(paths)))
	}
	return nil
}
