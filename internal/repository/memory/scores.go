// Package memory keeps the score tally in process memory. The tally is lost
// when the process exits; it backs tests and the SCORE_STORE=memory mode.
package memory

import (
	"context"
	"sync"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

type ScoreRepo struct {
	mu     sync.RWMutex
	scores domain.Scores
	saves  int
}

func NewScoreRepo(initial domain.Scores) *ScoreRepo {
	return &ScoreRepo{scores: initial}
}

func (r *ScoreRepo) Load(ctx context.Context) (domain.Scores, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scores, nil
}

func (r *ScoreRepo) Save(ctx context.Context, scores domain.Scores) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = scores
	r.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (r *ScoreRepo) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func (r *ScoreRepo) Close() error { return nil }
