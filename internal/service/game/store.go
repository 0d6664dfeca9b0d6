package game

import (
	"context"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

// ScoreStore keeps the tally across restarts. Only the three counters are
// stored, never the moves of a match.
type ScoreStore interface {
	Load(ctx context.Context) (domain.Scores, error)
	Save(ctx context.Context, scores domain.Scores) error
	Close() error
}
