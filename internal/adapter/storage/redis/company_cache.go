package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CompanyCache is a read-through cache in front of a ports.CompanyDirectory.
// Cache failures degrade to the underlying directory.
type CompanyCache struct {
	client *goredis.Client
	next   ports.CompanyDirectory
	ttl    time.Duration
	prefix string
	log    zerolog.Logger
}

// NewCompanyCache wraps next with a Redis cache of the given TTL.
func NewCompanyCache(client *goredis.Client, next ports.CompanyDirectory, ttl time.Duration, log zerolog.Logger) *CompanyCache {
	return &CompanyCache{
		client: client,
		next:   next,
		ttl:    ttl,
		prefix: "company:",
		log:    log,
	}
}

// Profile returns the cached profile, loading and caching it on a miss.
func (c *CompanyCache) Profile(ctx context.Context, companyID uuid.UUID) (*domain.CompanyProfile, error) {
	key := c.prefix + companyID.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.CompanyProfile
		if jsonErr := json.Unmarshal(raw, &p); jsonErr == nil {
			return &p, nil
		}
		c.log.Warn().Str("company_id", companyID.String()).Msg("discarding corrupt cached company profile")
	case !errors.Is(err, goredis.Nil):
		c.log.Warn().Err(err).Msg("company cache read failed, falling back to directory")
	}

	p, err := c.next.Profile(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("load company profile: %w", err)
	}
	if p == nil {
		return nil, nil
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Msg("company cache write failed")
		}
	}
	return p, nil
}
