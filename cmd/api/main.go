package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merchant-reserve-engine/config"
	httpHandler "merchant-reserve-engine/internal/adapter/http/handler"
	pgStorage "merchant-reserve-engine/internal/adapter/storage/postgres"
	redisStorage "merchant-reserve-engine/internal/adapter/storage/redis"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/internal/service"
	"merchant-reserve-engine/pkg/logger"
)

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
		Int("port", cfg.Server.Port).
		Msg("Starting Merchant Reserve Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	profileRepo := pgStorage.NewProfileRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	chargebackRepo := pgStorage.NewChargebackRepo(pool)
	assessmentRepo := pgStorage.NewAssessmentRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis adapters
	runLock := redisStorage.NewRunLock(rdb)
	events := redisStorage.NewEventPublisher(rdb)

	// Initialize business services
	auditSvc := service.NewAuditService(auditRepo, log)
	reserveSvc := service.NewReserveService(profileRepo, ledgerRepo, transactor, auditSvc, events, cfg.Reserve, log)
	settlementSvc := service.NewSettlementService(ledgerRepo, reserveSvc, runLock, auditSvc, cfg.Settlement, log)
	riskSvc := service.NewRiskService(profileRepo, assessmentRepo, transactor, auditSvc, events, log)
	chargebackSvc := service.NewChargebackService(chargebackRepo, profileRepo, reserveSvc, transactor, auditSvc, events, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReserveSvc:     reserveSvc,
		SettlementSvc:  settlementSvc,
		RiskSvc:        riskSvc,
		ChargebackSvc:  chargebackSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Scheduled settlement runner
	runnerCtx, stopRunner := context.WithCancel(ctx)
	defer stopRunner()
	if cfg.Settlement.Enabled {
		go settlementSvc.RunTicker(runnerCtx)
		log.Info().Dur("interval", cfg.Settlement.Interval).Msg("Settlement ticker started")
	}

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
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

	stopRunner()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
