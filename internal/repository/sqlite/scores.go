// Package sqlite stores the score tally in a local SQLite file so it
// survives restarts of the terminal or browser front-end.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

type ScoreRepo struct {
	db *sql.DB
}

// Open creates or opens the database at path and makes sure the scores
// row exists. Use ":memory:" for a throwaway database.
func Open(path string) (*ScoreRepo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// one writer; a second connection to ":memory:" would see an empty db
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	log.Info().Str("component", "store").Str("path", path).Msg("sqlite score store opened")
	return &ScoreRepo{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func (r *ScoreRepo) Load(ctx context.Context) (domain.Scores, error) {
	var s domain.Scores
	err := r.db.QueryRowContext(ctx,
		`SELECT red_wins, yellow_wins, draws FROM scores WHERE id = 1`,
	).Scan(&s.SideA, &s.SideB, &s.Draws)
	if err != nil {
		return domain.Scores{}, fmt.Errorf("failed to load scores: %w", err)
	}
	return s, nil
}

func (r *ScoreRepo) Save(ctx context.Context, s domain.Scores) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scores (id, red_wins, yellow_wins, draws) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			red_wins    = excluded.red_wins,
			yellow_wins = excluded.yellow_wins,
			draws       = excluded.draws,
			updated_at  = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		s.SideA, s.SideB, s.Draws)
	if err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

func (r *ScoreRepo) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
