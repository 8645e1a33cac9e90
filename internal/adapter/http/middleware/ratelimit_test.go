package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cash-wallet-ledger/internal/adapter/http/middleware"
	redisStore "cash-wallet-ledger/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const headerTestUser = "X-Test-User"

func setupRateLimitRouter(store *redisStore.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	// Stand-in for JWTAuth: the test header carries the user id.
	actor := func(c *gin.Context) {
		if u := c.GetHeader(headerTestUser); u != "" {
			c.Set(middleware.CtxCompanyID, uuid.Nil)
			c.Set(middleware.CtxUserID, uuid.MustParse(u))
		}
		c.Next()
	}

	r.GET("/test", actor, middleware.RateLimiter(store, "test", rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	// Use up the limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// 4th request should be blocked
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_CountsPerActor(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)
	userA, userB := uuid.New(), uuid.New()

	// User A uses up the limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		req.Header.Set(headerTestUser, userA.String())
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// User B should still be allowed (independent counter)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	req.Header.Set(headerTestUser, userB.String())
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestRateLimiter_DegradesWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)
	mr.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(60), rules["cash_write"].Limit)
	assert.Equal(t, int64(30), rules["cash_approve"].Limit)
	assert.Equal(t, int64(10), rules["cash_handover"].Limit)
	assert.Equal(t, int64(120), rules["cash_read"].Limit)
	assert.Equal(t, int64(5), rules["cash_export"].Limit)
}
