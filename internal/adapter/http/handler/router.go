package handler

import (
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	redisStore "github.com/Gigabyte00/flowpay-dashboard/internal/adapter/storage/redis"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	VendorSvc      ports.VendorService
	PaymentSvc     ports.PaymentOrchestrator
	FeeSvc         ports.FeeQuoter
	LedgerSvc      ports.LedgerService
	AccountSvc     ports.AccountService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies Redis and the backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	sessionAuth := middleware.SessionAuth(deps.SessionSvc, deps.Logger)

	sessionHandler := NewSessionHandler(deps.SessionSvc, deps.VendorSvc, deps.PaymentSvc)
	vendorHandler := NewVendorHandler(deps.VendorSvc)
	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.FeeSvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	accountHandler := NewAccountHandler(deps.AccountSvc)

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	v1.POST("/session", rl("session"), sessionHandler.SignIn)

	// --- Session-authenticated routes ---
	v1.DELETE("/session", sessionAuth, sessionHandler.SignOut)

	vendors := v1.Group("/vendors", sessionAuth)
	{
		vendors.GET("", rl("vendors"), vendorHandler.List)
		vendors.POST("", rl("vendors"), vendorHandler.Create)
		vendors.POST("/:id/dashboard", rl("vendors"), vendorHandler.DashboardURL)
		vendors.POST("/:id/refresh", rl("vendors"), vendorHandler.Refresh)
	}

	payments := v1.Group("/payments", sessionAuth)
	{
		payments.GET("/quote", rl("payments"), paymentHandler.Quote)
		payments.POST("/intent", rl("payments"), paymentHandler.CreateIntent)
		payments.POST("/confirm", rl("payments"), paymentHandler.Confirm)
		payments.GET("/flow", rl("payments"), paymentHandler.Flow)
		payments.DELETE("/flow", rl("payments"), paymentHandler.Abandon)
	}

	v1.GET("/transactions", sessionAuth, rl("transactions"), ledgerHandler.List)
	v1.GET("/stats", sessionAuth, rl("account"), accountHandler.Stats)
	v1.PATCH("/profile", sessionAuth, rl("account"), accountHandler.UpdateProfile)

	return r
}
