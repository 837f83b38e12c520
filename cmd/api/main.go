package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/londailey6937/chapter-analysis/internal/analysis"
	"github.com/londailey6937/chapter-analysis/internal/api/handlers"
	"github.com/londailey6937/chapter-analysis/internal/cache/redis"
	"github.com/londailey6937/chapter-analysis/internal/extractor"
	"github.com/londailey6937/chapter-analysis/internal/metrics"
	"github.com/londailey6937/chapter-analysis/internal/middleware/ratelimit"
	"github.com/londailey6937/chapter-analysis/internal/middleware/security"
	"github.com/londailey6937/chapter-analysis/internal/middleware/validation"
	"github.com/londailey6937/chapter-analysis/pkg/config"
	appLogger "github.com/londailey6937/chapter-analysis/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Chapter Analysis API Server")

	metrics.Init()

	var cache *redis.Client
	if cfg.Cache.Enabled {
		cache, err = redis.NewClient(
			cfg.Cache.Host,
			cfg.Cache.Port,
			cfg.Cache.Password,
			cfg.Cache.DB,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
		)
		if err != nil {
			appLogger.Warn("Report cache unavailable, continuing without it", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	ex := extractor.New(extractor.Config{
		MaxConcepts:        cfg.Extractor.MaxConcepts,
		ScoreThreshold:     cfg.Extractor.ScoreThreshold,
		ContextRadius:      cfg.Extractor.ContextRadius,
		ProximityThreshold: cfg.Extractor.ProximityThreshold,
		InferRelationships: cfg.Extractor.InferRelationships,
	}, appLogger.Log)

	analyzer := analysis.NewAnalyzer(ex, analysis.DefaultEvaluators(), appLogger.Log)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.RateLimit.MaxRequestsPerMinute,
		Logger:               appLogger.Log,
	})
	defer limiter.Stop()
	app.Use(limiter.Middleware())

	app.Use(validation.Middleware(validation.Config{
		MaxDocumentSize: cfg.Server.BodyLimit,
		Logger:          appLogger.Log,
	}))

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cache)
	graphHandler := handlers.NewGraphHandler(ex)

	api := app.Group("/api/v1")

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/graph", graphHandler.HandleGraph)
	api.Get("/domains", graphHandler.HandleDomains)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	api.Get("/ready", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
