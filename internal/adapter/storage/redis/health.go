package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthKey = "health:probe"

// HealthCheck reports Redis as healthy only when it accepts writes; a
// read-only replica cannot hold idempotency or rate limit state.
type HealthCheck struct {
	client goredis.UniversalClient
}

func NewHealthCheck(client goredis.UniversalClient) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Set(ctx, healthKey, time.Now().UTC().Unix(), time.Minute).Err()
}

func (h *HealthCheck) Name() string {
	return "redis"
}
