package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

const scoresKey = "connect4:scores"

const (
	fieldRed    = "red"
	fieldYellow = "yellow"
	fieldDraws  = "draws"
)

// ScoreRepo keeps the tally in one hash. Missing fields read as zero.
type ScoreRepo struct {
	client *redis.Client
	key    string
}

func NewScoreRepo(client *redis.Client) *ScoreRepo {
	return &ScoreRepo{client: client, key: scoresKey}
}

func (r *ScoreRepo) Load(ctx context.Context) (domain.Scores, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return domain.Scores{}, fmt.Errorf("failed to load scores: %w", err)
	}
	return parseScores(fields)
}

func (r *ScoreRepo) Save(ctx context.Context, s domain.Scores) error {
	err := r.client.HSet(ctx, r.key,
		fieldRed, s.SideA,
		fieldYellow, s.SideB,
		fieldDraws, s.Draws,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

func (r *ScoreRepo) Close() error {
	return r.client.Close()
}

func parseScores(fields map[string]string) (domain.Scores, error) {
	var s domain.Scores
	targets := map[string]*int{
		fieldRed:    &s.SideA,
		fieldYellow: &s.SideB,
		fieldDraws:  &s.Draws,
	}
	for name, dst := range targets {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domain.Scores{}, fmt.Errorf("corrupt %s count %q in %s", name, raw, scoresKey)
		}
		*dst = n
	}
	return s, nil
}
