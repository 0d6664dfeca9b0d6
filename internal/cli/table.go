package cli

import (
	"context"
	"fmt"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/config"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/repository"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

// openDriver connects the score store, restores the tally from it and
// wraps a fresh table in a driver. The caller closes the store.
func openDriver(ctx context.Context, cfg *config.Config) (*game.Driver, game.ScoreStore, error) {
	store, err := repository.OpenScoreStore(ctx, cfg)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open score store", err)
	}

	scores, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, nil, WrapExitError(ExitCommandError, "failed to load scores", err)
	}

	table := game.NewTable(scores, cfg.CellSize, cfg.AnimStep)
	return game.NewDriver(table, store, cfg.TickInterval), store, nil
}

func formatScores(red, yellow, draws int) string {
	return fmt.Sprintf("Red: %d\nYellow: %d\nDraws: %d\n", red, yellow, draws)
}
