package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompanyCache_ReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompanyDirectory(ctrl)
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCompanyCache(client, next, 5*time.Minute, zerolog.Nop())
	ctx := context.Background()

	companyID := uuid.New()
	profile := &domain.CompanyProfile{ID: companyID, Slug: "acme", Timezone: "Asia/Riyadh"}
	next.EXPECT().Profile(gomock.Any(), companyID).Return(profile, nil).Times(1)

	first, err := cache.Profile(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, profile, first)

	second, err := cache.Profile(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, "acme", second.Slug)
	assert.Equal(t, "Asia/Riyadh", second.Timezone)

	assert.True(t, s.Exists("company:"+companyID.String()))
}

func TestCompanyCache_ExpiresAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompanyDirectory(ctrl)
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCompanyCache(client, next, time.Minute, zerolog.Nop())
	ctx := context.Background()

	companyID := uuid.New()
	next.EXPECT().Profile(gomock.Any(), companyID).
		Return(&domain.CompanyProfile{ID: companyID, Slug: "acme"}, nil).Times(2)

	_, err := cache.Profile(ctx, companyID)
	require.NoError(t, err)
	s.FastForward(2 * time.Minute)
	_, err = cache.Profile(ctx, companyID)
	require.NoError(t, err)
}

func TestCompanyCache_MissingCompanyIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompanyDirectory(ctrl)
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCompanyCache(client, next, time.Minute, zerolog.Nop())

	companyID := uuid.New()
	next.EXPECT().Profile(gomock.Any(), companyID).Return(nil, nil)

	p, err := cache.Profile(context.Background(), companyID)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, s.Exists("company:"+companyID.String()))
}

func TestCompanyCache_DegradesWhenRedisDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompanyDirectory(ctrl)
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCompanyCache(client, next, time.Minute, zerolog.Nop())
	s.Close()

	companyID := uuid.New()
	next.EXPECT().Profile(gomock.Any(), companyID).Return(&domain.CompanyProfile{ID: companyID, Slug: "acme"}, nil)

	p, err := cache.Profile(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, "acme", p.Slug)
}

func TestCompanyCache_PropagatesDirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompanyDirectory(ctrl)
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCompanyCache(client, next, time.Minute, zerolog.Nop())

	next.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := cache.Profile(context.Background(), uuid.New())
	assert.Error(t, err)
}
