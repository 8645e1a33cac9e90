package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"cash-wallet-ledger/config"
	httpHandler "cash-wallet-ledger/internal/adapter/http/handler"
	kafkaMessaging "cash-wallet-ledger/internal/adapter/messaging/kafka"
	memStorage "cash-wallet-ledger/internal/adapter/storage/memory"
	pgStorage "cash-wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "cash-wallet-ledger/internal/adapter/storage/redis"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/internal/service"
	"cash-wallet-ledger/pkg/logger"
	"cash-wallet-ledger/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// directory is everything the ledger reads from the surrounding HR and operations data.
type directory interface {
	ports.EmploymentDirectory
	ports.FileStore
	ports.CompanyDirectory
	ports.OperationsAggregate
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("driver", cfg.Database.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Cash Wallet Ledger")

	ctx := context.Background()

	defaultLoc, err := time.LoadLocation(cfg.Ledger.DefaultTimezone)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid default timezone")
	}

	var (
		walletRepo   ports.WalletRepository
		txRepo       ports.CashTransactionRepository
		handoverRepo ports.HandoverRepository
		seqRepo      ports.SequenceRepository
		locker       ports.RowLocker
		transactor   ports.DBTransactor
		auditRepo    ports.AuditRepository
		dir          directory
		checkers     []ports.HealthChecker
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if cfg.Database.Migrate {
			if err := pgStorage.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply schema")
			}
			log.Info().Msg("Schema applied")
		}

		walletRepo = pgStorage.NewWalletRepo(pool)
		txRepo = pgStorage.NewTransactionRepo(pool)
		handoverRepo = pgStorage.NewHandoverRepo(pool)
		seqRepo = pgStorage.NewSequenceRepo()
		locker = pgStorage.NewAdvisoryLocker()
		transactor = pgStorage.NewTransactor(pool, cfg.Database.LockTimeout)
		auditRepo = pgStorage.NewAuditRepository(pool)
		dir = pgStorage.NewDirectoryRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))

	case config.DriverMemory:
		store := memStorage.NewStore()
		walletRepo = memStorage.NewWalletRepo(store)
		txRepo = memStorage.NewTransactionRepo(store)
		handoverRepo = memStorage.NewHandoverRepo(store)
		seqRepo = memStorage.NewSequenceRepo(store)
		locker = memStorage.NewLocker()
		transactor = store
		auditRepo = memStorage.NewAuditRepo(store)
		dir = memStorage.NewDirectory(store)
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
	}

	var companies ports.CompanyDirectory = dir

	// Redis backs idempotency, rate limiting and the company profile cache
	var (
		idempotencyCache ports.IdempotencyCache
		rateLimitStore   *redisStorage.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		companies = redisStorage.NewCompanyCache(rdb, dir, cfg.Ledger.CompanyCacheTTL, log)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	var publisher ports.AuditPublisher
	if cfg.Kafka.Enabled {
		kp, err := kafkaMessaging.NewAuditPublisher(ctx, cfg.Kafka, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer kp.Close()
		publisher = kp
		checkers = append(checkers, kp)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Core services
	auditSvc := service.NewAuditService(auditRepo, publisher, logger.Component(log, "audit"))
	wallets := service.NewWalletStore(walletRepo, transactor)
	sequences := service.NewSequenceAllocator(seqRepo)
	exposureSvc := service.NewExposureService(dir, txRepo, dir, wallets, companies, defaultLoc, m, logger.Component(log, "exposure"))
	ledgerSvc := service.NewLedgerService(service.LedgerDeps{
		Transactions:    txRepo,
		Wallets:         wallets,
		Sequences:       sequences,
		Locker:          locker,
		Exposure:        exposureSvc,
		Employments:     dir,
		Files:           dir,
		Companies:       companies,
		Transactor:      transactor,
		Audit:           auditSvc,
		Metrics:         m,
		DefaultLocation: defaultLoc,
		Log:             logger.Component(log, "ledger"),
	})
	handoverSvc := service.NewHandoverService(service.HandoverDeps{
		Handovers:       handoverRepo,
		Transactions:    txRepo,
		Wallets:         wallets,
		Sequences:       sequences,
		Files:           dir,
		Companies:       companies,
		Transactor:      transactor,
		Audit:           auditSvc,
		Metrics:         m,
		DefaultLocation: defaultLoc,
		Log:             logger.Component(log, "handover"),
	})
	exportSvc := service.NewExportService(exposureSvc, logger.Component(log, "export"))
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:        ledgerSvc,
		HandoverSvc:      handoverSvc,
		ExposureSvc:      exposureSvc,
		WalletSvc:        wallets,
		ExportSvc:        exportSvc,
		TokenSvc:         tokenSvc,
		IdempotencyCache: idempotencyCache,
		IdempotencyTTL:   cfg.Ledger.IdempotencyTTL,
		RateLimitStore:   rateLimitStore,
		HealthCheckers:   checkers,
		Metrics:          reg,
		Logger:           log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Flush in-flight audit events before the stores close
	auditSvc.Wait()

	log.Info().Msg("Server exited")
}
