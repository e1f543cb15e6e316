package main

// @title Direct Pavers Quote API
// @version 1.0
// @description Lead generation backend for Direct Pavers: quote wizard, AI paver visualization, pricing, and lead management.

// @contact.name Direct Pavers
// @contact.url https://directpavers.com

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey AdminPassword
// @in header
// @name X-Admin-Password
// @description Shared admin password for the management endpoints

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/directpavers/paverquote/config"
	_ "github.com/directpavers/paverquote/docs"
	"github.com/directpavers/paverquote/pkg/analytics"
	"github.com/directpavers/paverquote/pkg/api/handlers"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/catalog"
	"github.com/directpavers/paverquote/pkg/database"
	"github.com/directpavers/paverquote/pkg/email"
	"github.com/directpavers/paverquote/pkg/export"
	"github.com/directpavers/paverquote/pkg/jobs"
	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/logger"
	"github.com/directpavers/paverquote/pkg/metrics"
	custommiddleware "github.com/directpavers/paverquote/pkg/middleware"
	"github.com/directpavers/paverquote/pkg/pricing"
	"github.com/directpavers/paverquote/pkg/visualizer"
	"github.com/directpavers/paverquote/pkg/wizard"
	"github.com/directpavers/paverquote/pkg/zones"
)

// CustomValidator wires go-playground/validator into Echo's c.Validate
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize services
	auditService := audit.NewService(db.Ent)
	emailService := email.NewService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName, cfg.OwnerEmail)
	pricingService := pricing.NewService(db.Ent, redisClient)
	zonesService := zones.NewService(db.Ent, redisClient)
	catalogService := catalog.NewService(db.Ent, redisClient)
	leadService := leads.NewService(db.Ent, emailService, auditService)
	analyticsService := analytics.NewService(db.Ent, redisClient)
	exportService := export.NewService(leadService)

	// Wizard session store lives in memory; sessions expire after the TTL
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sessionStore := wizard.NewStore(sessionTTL, 5*time.Minute)
	wizardService := wizard.NewService(sessionStore, catalogService, pricingService, zonesService, leadService, analyticsService)
	log.Printf("✅ Wizard session store initialized (TTL: %s)", sessionTTL)

	// AI visualizer
	aiTimeout := time.Duration(cfg.AITimeoutSeconds) * time.Second
	var visualizerClient visualizer.Client = visualizer.NewOpenAIClient(cfg.AIAPIKey, cfg.AIModel, aiTimeout)
	if cfg.AIAPIKey == "" {
		log.Printf("⚠️  AI visualizer has no API key; simulation requests will fail")
	} else {
		log.Printf("✅ AI visualizer initialized (model: %s, timeout: %s)", cfg.AIModel, aiTimeout)
	}

	// Initialize cron manager for analytics warm-up and retention jobs
	cronManager := jobs.NewCronManager(analyticsService, auditService, cfg.AnalyticsRetentionDays, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	simulateRateLimiter := custommiddleware.NewRateLimiter(cfg.SimulateRequestsPerMinute, 2) // AI renders are expensive
	leadRateLimiter := custommiddleware.NewRateLimiter(10, 3)                                // slow down form spam

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLogger.Info("request", "method", c.Request().Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, custommiddleware.AdminHeader},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	catalogHandler := handlers.NewCatalogHandler(catalogService, auditService)
	pricingHandler := handlers.NewPricingHandler(pricingService, auditService)
	zonesHandler := handlers.NewZonesHandler(zonesService, auditService)
	leadHandler := handlers.NewLeadHandler(leadService, prometheusMetrics)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, auditService, prometheusMetrics)
	exportHandler := handlers.NewExportHandler(exportService)
	wizardHandler := handlers.NewWizardHandler(wizardService, visualizerClient, auditService, prometheusMetrics, aiTimeout)
	simulateHandler := handlers.NewSimulateHandler(visualizerClient, auditService, prometheusMetrics, aiTimeout)

	// Root and operational endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Direct Pavers Quote API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"storefront":  cfg.StorefrontURL,
			"timestamp":   time.Now().Unix(),
		})
	})
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	// Catalog (public, read-only)
	v1.GET("/manufacturers", catalogHandler.ListManufacturers)
	v1.GET("/products", catalogHandler.ListProducts)
	v1.GET("/products/:id", catalogHandler.GetProduct)

	// Pricing and zones (public, read-only)
	v1.GET("/pricing", pricingHandler.GetConfig)
	v1.GET("/zones", zonesHandler.ListZones)

	// Leads (public capture)
	v1.POST("/leads", leadHandler.CreateLead, leadRateLimiter.RateLimitMiddleware())

	// Analytics sink (public, fire-and-forget)
	v1.POST("/analytics/events", analyticsHandler.TrackEvent)

	// Standalone visualization for the embed widget
	v1.POST("/simulate", simulateHandler.Simulate, simulateRateLimiter.RateLimitMiddleware())

	// Quote wizard
	wizardRoutes := v1.Group("/wizard/sessions")
	{
		wizardRoutes.POST("", wizardHandler.StartSession)
		wizardRoutes.GET("/:id", wizardHandler.GetSession)
		wizardRoutes.POST("/:id/begin", wizardHandler.Begin)
		wizardRoutes.POST("/:id/photos", wizardHandler.SubmitPhotos)
		wizardRoutes.POST("/:id/measurements", wizardHandler.SubmitMeasurements)
		wizardRoutes.POST("/:id/lead", wizardHandler.CaptureLead, leadRateLimiter.RateLimitMiddleware())
		wizardRoutes.POST("/:id/skip-lead", wizardHandler.SkipLead)
		wizardRoutes.POST("/:id/select-product", wizardHandler.SelectProduct)
		wizardRoutes.POST("/:id/simulate", wizardHandler.Simulate, simulateRateLimiter.RateLimitMiddleware())
		wizardRoutes.POST("/:id/approve", wizardHandler.Approve)
		wizardRoutes.POST("/:id/try-another", wizardHandler.TryAnother)
		wizardRoutes.POST("/:id/zone", wizardHandler.SelectZone)
		wizardRoutes.POST("/:id/labor-quote", wizardHandler.ShowLaborQuote)
		wizardRoutes.POST("/:id/cta", wizardHandler.RecordCTA)
		wizardRoutes.POST("/:id/restart", wizardHandler.Restart)
	}

	// Admin routes (shared password gate)
	admin := v1.Group("/admin", custommiddleware.RequireAdmin(cfg.AdminPassword, cfg.AdminPasswordHash))
	{
		admin.PUT("/products", catalogHandler.UpsertProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

		admin.PUT("/pricing", pricingHandler.UpdateConfig)

		admin.GET("/zones", zonesHandler.AdminListZones)
		admin.PUT("/zones", zonesHandler.UpsertZone)
		admin.DELETE("/zones/:id", zonesHandler.DeleteZone)

		admin.GET("/leads", leadHandler.ListLeads)
		admin.PATCH("/leads/:id/status", leadHandler.UpdateLeadStatus)
		if cfg.FeatureLeadExports {
			admin.GET("/leads/export", exportHandler.ExportLeads)
		}

		admin.GET("/analytics/overview", analyticsHandler.Overview)
		admin.GET("/logs", analyticsHandler.ListLogs)
	}

	// Keep the live session gauge fresh
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			prometheusMetrics.SetActiveSessions(float64(sessionStore.Count()))
		}
	}()

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Direct Pavers Quote API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), simulate %d/min", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst, cfg.SimulateRequestsPerMinute)
	log.Printf("🕐 Cron jobs: daily 2AM (analytics warm-up), weekly Sunday 3AM (retention, %d days)", cfg.AnalyticsRetentionDays)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	sessionStore.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
