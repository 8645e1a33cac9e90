package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cash-wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// HealthCheck handles GET /health. Every dependency is pinged concurrently
// under one deadline.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		var (
			mu         sync.Mutex
			wg         sync.WaitGroup
			deps       = make(map[string]depStatus, len(checkers))
			allHealthy = true
		)
		for _, checker := range checkers {
			wg.Add(1)
			go func(checker ports.HealthChecker) {
				defer wg.Done()
				err := checker.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
					allHealthy = false
					return
				}
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}(checker)
		}
		wg.Wait()

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
