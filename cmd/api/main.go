// @title RuralLearn API
// @version 1.0
// @description JSON mirror of the RuralLearn screens: content library, interactive quiz and virtual classroom.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "rurallearn/cmd/api/docs"
	"rurallearn/internal/adapter"
	"rurallearn/internal/cache"
	"rurallearn/internal/config"
	"rurallearn/internal/domain"
	"rurallearn/internal/logger"
	"rurallearn/internal/metrics"
	"rurallearn/internal/seed"
	"rurallearn/internal/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout      = 10 * time.Second
	cacheCleanupInterval = time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	catalog, err := seed.Default()
	if err != nil {
		appLogger.Fatal("Failed to load seed data", zap.Error(err))
	}
	if cfg.Quiz.TimePerQuestion > 0 {
		catalog.Quiz.TimePerQuestion = cfg.Quiz.TimePerQuestion
	}
	appLogger.Info("Seed data loaded",
		zap.Int("content_items", len(catalog.Content)),
		zap.Int("quiz_questions", catalog.Quiz.Total()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	// Session cache: Redis when configured, in-process otherwise
	var sessionCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Using Redis session cache", zap.String("address", cfg.Redis.Address))
	} else {
		sessionCache = adapter.NewMemoryCacheAdapter(cacheCleanupInterval)
		appLogger.Info("Using in-process session cache")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	app := server.New(server.Deps{
		Config:  cfg,
		Catalog: catalog,
		Cache:   sessionCache,
		Metrics: m,
	})

	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
