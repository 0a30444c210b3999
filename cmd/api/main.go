package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emel-water/emel-api/config"
	"github.com/emel-water/emel-api/internal/handlers"
	"github.com/emel-water/emel-api/internal/middleware"
	"github.com/emel-water/emel-api/internal/services"
	"github.com/emel-water/emel-api/pkg/logger"
	"github.com/emel-water/emel-api/pkg/metrics"
	"github.com/emel-water/emel-api/pkg/profiling"
	"github.com/emel-water/emel-api/pkg/telegram"
	"github.com/emel-water/emel-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes wires the public API surface. API routes are registered
// before the static fallback so they always win route resolution.
func registerAPIRoutes(
	router *gin.Engine,
	generalRateLimiter, orderRateLimiter *middleware.RateLimiter,
	orderHandler *handlers.OrderHandler,
	pricesHandler *handlers.PricesHandler,
	healthHandler *handlers.HealthHandler,
	logsHandler *handlers.LogsHandler,
) {
	api := router.Group("/api")
	api.POST("/orders", orderRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), orderHandler.CreateOrder)
	api.GET("/prices", generalRateLimiter.Middleware(), pricesHandler.GetPrices)
	api.GET("/health", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.POST("/logs", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), logsHandler.ReceiveFrontendLogs)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}

func main() {
	startedAt := time.Now()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Emel API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize Telegram notification client
	telegramClient, err := telegram.New(
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		cfg.Telegram.ChannelUsername,
	)
	if err != nil {
		logger.Fatal("Failed to initialize Telegram client", zap.Error(err))
	}

	// Initialize services
	orderService := services.NewOrderService(cfg, telegramClient)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService, cfg)
	pricesHandler := handlers.NewPricesHandler()
	healthHandler := handlers.NewHealthHandler(startedAt)
	logsHandler := handlers.NewLogsHandler(cfg.Logging.Dir)
	staticHandler := handlers.NewStaticHandler(cfg.Server.StaticDir)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters: a tight one on order submission to curb spam, a general
	// one everywhere else
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	orderRateLimiter := middleware.NewRateLimiter(5, 10)      // 5 req/sec, burst of 10

	registerAPIRoutes(router, generalRateLimiter, orderRateLimiter,
		orderHandler, pricesHandler, healthHandler, logsHandler)

	// Everything that is not an API route is served from the static site
	// directory; misses get the JSON not-found envelope
	router.NoRoute(staticHandler.NoRoute)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
