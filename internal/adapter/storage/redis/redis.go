package redis

import (
	"context"
	"fmt"
	"time"

	"cash-wallet-ledger/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Idempotency replays and rate limit counters sit on the request path, so
// Redis calls fail fast instead of stalling a ledger write.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
)

// NewClient connects to the Redis instance backing idempotency, rate limiting
// and the company cache.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}
