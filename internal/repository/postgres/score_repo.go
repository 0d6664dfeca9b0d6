package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

type ScoreRepo struct {
	DB *sql.DB
}

func NewScoreRepo(db *sql.DB) *ScoreRepo {
	return &ScoreRepo{DB: db}
}

func (r *ScoreRepo) Load(ctx context.Context) (domain.Scores, error) {
	var s domain.Scores
	err := r.DB.QueryRowContext(ctx,
		`SELECT red_wins, yellow_wins, draws FROM scores WHERE id = 1`,
	).Scan(&s.SideA, &s.SideB, &s.Draws)
	if err != nil {
		return domain.Scores{}, fmt.Errorf("failed to load scores: %w", err)
	}
	return s, nil
}

// Save overwrites the tally. The row is upserted so a table truncated by
// hand does not break saving.
func (r *ScoreRepo) Save(ctx context.Context, s domain.Scores) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO scores (id, red_wins, yellow_wins, draws, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			red_wins = EXCLUDED.red_wins,
			yellow_wins = EXCLUDED.yellow_wins,
			draws = EXCLUDED.draws,
			updated_at = EXCLUDED.updated_at`,
		s.SideA, s.SideB, s.Draws)
	if err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

func (r *ScoreRepo) Close() error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
