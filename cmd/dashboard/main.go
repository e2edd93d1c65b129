package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/config"
	backendClient "github.com/Gigabyte00/flowpay-dashboard/internal/adapter/backend"
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/cardgateway"
	httpHandler "github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/handler"
	redisStorage "github.com/Gigabyte00/flowpay-dashboard/internal/adapter/storage/redis"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/internal/service"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/logger"
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
		Msg("Starting FlowPay Dashboard")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("session secret is not configured (FLOWPAY_SESSION_SECRET)")
	}

	ctx := context.Background()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize upstream clients
	backend := backendClient.NewClient(cfg.Backend, log)
	cards := cardgateway.NewClient(cfg.CardGateway, log)

	// Initialize Redis stores
	sessionStore := redisStorage.NewSessionStore(rdb)
	flightGuard := redisStorage.NewFlightGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)
	feeSvc := service.NewFeeService(cfg.Fees)

	// Initialize business services
	sessionSvc := service.NewSessionService(backend, sessionStore, tokenSvc, cfg.Session.Expiry, log)
	vendorSvc := service.NewVendorService(backend, log)
	paymentSvc := service.NewPaymentOrchestrator(backend, cards, feeSvc, vendorSvc, flightGuard, log)
	ledgerSvc := service.NewLedgerService(backend, log)
	accountSvc := service.NewAccountService(backend, log)

	// Initialize health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)
	backendHealth := backendClient.NewHealthCheck(backend)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		VendorSvc:      vendorSvc,
		PaymentSvc:     paymentSvc,
		FeeSvc:         feeSvc,
		LedgerSvc:      ledgerSvc,
		AccountSvc:     accountSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisHealth, backendHealth},
		Logger:         log,
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
