// Package repository picks the score store named by the configuration.
package repository

import (
	"context"
	"fmt"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/config"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/repository/memory"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/repository/postgres"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/repository/sqlite"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

// OpenScoreStore connects the backend selected by cfg.ScoreStore.
func OpenScoreStore(ctx context.Context, cfg *config.Config) (game.ScoreStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.ScoreStore {
	case config.StoreMemory:
		return memory.NewScoreRepo(domain.Scores{}), nil

	case config.StoreSQLite:
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.StorePostgres:
		db, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolConfig{
			MaxOpenConns:       cfg.DBMaxOpenConns,
			MaxIdleConns:       cfg.DBMaxIdleConns,
			ConnMaxLifetimeMin: cfg.DBConnMaxLifetimeMin,
		})
		if err != nil {
			return nil, err
		}
		return postgres.NewScoreRepo(db), nil

	case config.StoreRedis:
		client, err := redis.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return redis.NewScoreRepo(client), nil
	}
	return nil, fmt.Errorf("unknown score store %q", cfg.ScoreStore)
}
