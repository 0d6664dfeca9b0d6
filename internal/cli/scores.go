package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/repository"
)

func NewScoresCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show or reset the stored tally",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored tally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := withStore(cmd.Context(), rootOpts, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatScores(scores.SideA, scores.SideB, scores.Draws))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Set every count back to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zero := domain.Scores{}
			if _, err := withStore(cmd.Context(), rootOpts, &zero); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Scores reset.")
			return nil
		},
	})

	return cmd
}

// withStore opens the configured store, optionally saves replace, and
// returns the tally it then holds.
func withStore(ctx context.Context, opts *RootOptions, replace *domain.Scores) (domain.Scores, error) {
	store, err := repository.OpenScoreStore(ctx, opts.Config)
	if err != nil {
		return domain.Scores{}, WrapExitError(ExitCommandError, "failed to open score store", err)
	}
	defer store.Close()

	if replace != nil {
		if err := store.Save(ctx, *replace); err != nil {
			return domain.Scores{}, WrapExitError(ExitCommandError, "failed to save scores", err)
		}
	}

	scores, err := store.Load(ctx)
	if err != nil {
		return domain.Scores{}, WrapExitError(ExitCommandError, "failed to load scores", err)
	}
	return scores, nil
}
