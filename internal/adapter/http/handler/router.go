package handler

import (
	"time"

	"cash-wallet-ledger/internal/adapter/http/middleware"
	redisStore "cash-wallet-ledger/internal/adapter/storage/redis"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc        ports.LedgerService
	HandoverSvc      ports.HandoverService
	ExposureSvc      ports.ExposureService
	WalletSvc        ports.WalletService
	ExportSvc        ports.ExportService
	TokenSvc         ports.TokenService
	IdempotencyCache ports.IdempotencyCache   // nil = Idempotency-Key ignored
	IdempotencyTTL   time.Duration
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers   []ports.HealthChecker
	Metrics          prometheus.Gatherer // nil = /metrics not served
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check pings every configured dependency
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()
	noop := func(c *gin.Context) { c.Next() }

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return noop
		}
		rule, ok := rules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	idem := noop
	if deps.IdempotencyCache != nil {
		idem = middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyTTL, deps.Logger)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	handoverHandler := NewHandoverHandler(deps.HandoverSvc)
	employeeHandler := NewEmployeeHandler(deps.ExposureSvc, deps.ExportSvc)
	walletHandler := NewWalletHandler(deps.WalletSvc)

	// --- JWT-authenticated cash routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	cash := r.Group("/api/v1/cash", jwtAuth)
	{
		cash.POST("/receipts", rl("cash_write"), idem, ledgerHandler.CreateReceipt)
		cash.POST("/loans", rl("cash_write"), idem, ledgerHandler.CreateLoan)
		cash.POST("/deductions", rl("cash_write"), idem, ledgerHandler.CreateDeduction)
		cash.GET("/transactions", rl("cash_read"), ledgerHandler.ListTransactions)
		cash.GET("/transactions/:id", rl("cash_read"), ledgerHandler.GetTransaction)
		cash.PATCH("/transactions/:id/status", rl("cash_approve"), ledgerHandler.UpdateStatus)

		cash.POST("/handovers", rl("cash_handover"), idem, handoverHandler.Create)
		cash.GET("/handovers/:id", rl("cash_read"), handoverHandler.Get)
		cash.POST("/handovers/:id/approve", rl("cash_handover"), handoverHandler.Approve)

		cash.GET("/employees", rl("cash_read"), employeeHandler.List)
		cash.GET("/employees/export", rl("cash_export"), employeeHandler.Export)
		cash.GET("/employees/:id", rl("cash_read"), employeeHandler.Detail)
		cash.GET("/stats", rl("cash_read"), employeeHandler.Stats)
		cash.GET("/wallet", rl("cash_read"), walletHandler.GetBalance)
	}

	return r
}
