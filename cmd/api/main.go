package main

// @title Route Recorder API
// @version 1.0.0
// @description Browser-based map viewer backend: click to record polyline routes
// @description over an OpenStreetMap tile layer, annotate them, and keep them in a
// @description durable key-value store across restarts.

// @host localhost:8080
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/route-recorder/docs"
	"github.com/route-recorder/internal/config"
	httpDelivery "github.com/route-recorder/internal/delivery/http"
	"github.com/route-recorder/internal/delivery/http/handler"
	"github.com/route-recorder/internal/domain/repository"
	"github.com/route-recorder/internal/pkg/logger"
	"github.com/route-recorder/internal/repository/cache"
	"github.com/route-recorder/internal/repository/memory"
	"github.com/route-recorder/internal/repository/postgres"
	"github.com/route-recorder/internal/usecase"
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

	log.Info("Starting Route Recorder")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// 3. Connect the persistence substrate
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var storage repository.StorageRepository
	var closers []func() error

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		closers = append(closers, redisClient.Close)

		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		storage = cache.NewStorageRepository(redisClient)

	case config.StoragePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		closers = append(closers, db.Close)

		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
		storage, err = postgres.NewStorageRepository(ctx, db)
		if err != nil {
			log.Fatal("Failed to initialize PostgreSQL storage", zap.Error(err))
		}

	default:
		log.Warn("Using in-memory storage, saved routes will not survive restarts")
		storage = memory.NewStorageRepository()
	}

	log.Info("Storage connected", zap.String("backend", cfg.Storage.Backend))

	// 4. Initialize the recorder use case and load the saved collection
	recorderUC := usecase.NewRecorderUseCase(storage, log)
	if err := recorderUC.Load(ctx); err != nil {
		log.Fatal("Failed to load saved routes", zap.Error(err))
	}

	log.Info("Recorder initialized")

	// 5. Initialize HTTP handlers
	recorderHandler := handler.NewRecorderHandler(recorderUC, log)
	routeHandler := handler.NewRouteHandler(recorderUC, log)
	mapHandler := handler.NewMapHandler(&cfg.Map)

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		recorderHandler,
		routeHandler,
		mapHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Error("Failed to close storage connection", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
