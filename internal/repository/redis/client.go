package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// clientOptions accepts a redis:// or rediss:// URL as well as a bare
// host:port. A non-empty password overrides one embedded in the URL.
func clientOptions(rawURL, password string) (*redis.Options, error) {
	if !strings.Contains(rawURL, "://") {
		return &redis.Options{Addr: rawURL, Password: password, DB: 0}, nil
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	return opts, nil
}

// Connect opens a client on rawURL and checks the server answers. Unlike a
// cache, the score store is the source of truth, so an unreachable server
// is an error rather than a silent fallback.
func Connect(ctx context.Context, rawURL, password string) (*redis.Client, error) {
	opts, err := clientOptions(rawURL, password)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", opts.Addr, err)
	}

	log.Info().Str("component", "store").Str("addr", opts.Addr).Int("db", opts.DB).Msg("redis connected successfully")
	return client, nil
}
