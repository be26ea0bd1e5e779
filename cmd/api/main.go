package main

// @title Spot Rally Service API
// @version 1.0.0
// @description Backend for building spot rallies: candidate spot discovery for a (region, genre) query with a persistent search cache, draft selection of 3-5 spots, rally submission, and S/A/B tier classification of rated stops.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/spot-rally/docs"
	"github.com/spot-rally/internal/config"
	httpDelivery "github.com/spot-rally/internal/delivery/http"
	"github.com/spot-rally/internal/delivery/http/handler"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/infrastructure/googleplaces"
	"github.com/spot-rally/internal/infrastructure/rallyapi"
	"github.com/spot-rally/internal/pkg/logger"
	"github.com/spot-rally/internal/repository/cache"
	"github.com/spot-rally/internal/repository/postgres"
	redisrepo "github.com/spot-rally/internal/repository/redis"
	"github.com/spot-rally/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Spot Rally Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (spot cache). Without a configured database
	// the service still runs, with the cache in no-op mode.
	var db *postgres.DB
	var spotCacheRepo repository.SpotCacheRepository

	if cfg.HasDatabase() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.EnsureSchema(schemaCtx); err != nil {
			cancelSchema()
			log.Fatal("Failed to ensure spot cache schema", zap.Error(err))
		}
		cancelSchema()

		spotCacheRepo = postgres.NewSpotCacheRepository(db, cfg.Search.MaxResults)
	} else {
		log.Warn("No database configured, spot cache disabled")
		spotCacheRepo = postgres.NewNoopSpotCache(log)
	}

	// 4. Connect to Redis (draft selections)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	googleClient := googleplaces.NewClient(&cfg.Google, log)
	rallyClient := rallyapi.NewClient(&cfg.RallyAPI, log)
	selectionRepo := redisrepo.NewSelectionRepository(redisClient, cfg.Selection.DraftTTL)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	candidateUC := usecase.NewCandidateUseCase(
		spotCacheRepo,
		googleClient,
		googleClient,
		log,
		cfg.Search,
	)

	selectionUC := usecase.NewSelectionUseCase(
		selectionRepo,
		rallyClient,
		log,
		cfg.Selection,
	)

	tierUC := usecase.NewTierBoardUseCase(rallyClient, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	spotHandler := handler.NewSpotHandler(candidateUC, log)
	geoHandler := handler.NewGeoHandler(googleClient, googleClient, log)
	selectionHandler := handler.NewSelectionHandler(selectionUC, log)
	tierHandler := handler.NewTierHandler(tierUC, log)
	rallyHandler := handler.NewRallyHandler(tierUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		geoHandler,
		selectionHandler,
		tierHandler,
		rallyHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
