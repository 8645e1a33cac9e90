package middleware

import (
	"net/http"
	"strings"
	"time"

	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxCompanyID = "company_id"
	CtxUserID    = "user_id"
	CtxRequestID = "request_id"
)

// Actor returns the tenant and user set by JWTAuth.
func Actor(c *gin.Context) (companyID, userID uuid.UUID, ok bool) {
	cid, ok1 := c.Get(CtxCompanyID)
	uid, ok2 := c.Get(CtxUserID)
	if !ok1 || !ok2 {
		return uuid.Nil, uuid.Nil, false
	}
	companyID, ok1 = cid.(uuid.UUID)
	userID, ok2 = uid.(uuid.UUID)
	return companyID, userID, ok1 && ok2
}

// JWTAuth creates a middleware that validates bearer tokens and stores the
// caller's company and user in the context.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenStr == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("rejected bearer token")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxCompanyID, claims.CompanyID)
		c.Set(CtxUserID, claims.UserID)
		c.Next()
	}
}

// RequestID propagates the caller's X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID))
		if companyID, userID, ok := Actor(c); ok {
			event = event.Str("company_id", companyID.String()).Str("user_id", userID.String())
		}
		event.Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
