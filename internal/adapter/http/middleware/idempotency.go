package middleware

import (
	"bytes"
	"encoding/json"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	// An in-flight claim outlives any sane request but frees the key if the process dies.
	claimTTL       = 30 * time.Second
	maxClientKeyLn = 128
)

// captureWriter tees the response body so it can be cached after the handler returns.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored 2xx response for a repeated Idempotency-Key.
// Keys are scoped to the caller and the request path. Requests without the
// header pass straight through, and a cache outage degrades to pass-through.
func Idempotency(cache ports.IdempotencyCache, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.GetHeader(HeaderIdempotencyKey)
		if clientKey == "" {
			c.Next()
			return
		}
		if len(clientKey) > maxClientKeyLn {
			response.Error(c, apperror.Validation("Idempotency-Key is too long"))
			c.Abort()
			return
		}
		companyID, userID, ok := Actor(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		key := domain.BuildIdempotencyKey(companyID, userID, c.Request.Method+" "+c.Request.URL.Path, clientKey)

		cached, err := cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lookup failed, processing request")
			c.Next()
			return
		}
		if cached != nil {
			var stored domain.CachedResponse
			if err := json.Unmarshal(cached, &stored); err == nil {
				c.Header(HeaderReplayed, "true")
				c.Data(stored.Status, stored.ContentType, stored.Body)
				c.Abort()
				return
			}
			log.Warn().Str("key", key).Msg("discarding unreadable idempotency entry")
		}

		claimed, err := cache.Claim(ctx, key, claimTTL)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency claim failed, processing request")
			c.Next()
			return
		}
		if !claimed {
			response.Error(c, apperror.ErrRequestInFlight())
			c.Abort()
			return
		}
		defer func() {
			if err := cache.Release(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to release idempotency claim")
			}
		}()

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < 200 || status >= 300 {
			return
		}
		payload, err := json.Marshal(domain.CachedResponse{
			Status:      status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to encode idempotent response")
			return
		}
		if err := cache.Set(ctx, key, payload, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to store idempotent response")
		}
	}
}
