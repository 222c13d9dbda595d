package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pointgrid/point-backend/api/routes"
	"github.com/pointgrid/point-backend/internal/config"
	"github.com/pointgrid/point-backend/internal/handlers"
	"github.com/pointgrid/point-backend/internal/repositories"
	"github.com/pointgrid/point-backend/internal/repositories/memory"
	mongorepo "github.com/pointgrid/point-backend/internal/repositories/mongodb"
	"github.com/pointgrid/point-backend/internal/services"
	"github.com/pointgrid/point-backend/pkg/mongodb"
)

func main() {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	// Pick the repository backend.
	var userPointRepo repositories.UserPointRepository
	var pointHistoryRepo repositories.PointHistoryRepository

	switch cfg.Storage.Driver {
	case "mongodb":
		mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			slog.Error("failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				slog.Error("error disconnecting from MongoDB", "error", err)
			}
		}()

		db := mongoClient.Database(cfg.MongoDB.Database)
		userPointRepo = mongorepo.NewUserPointRepository(db)
		pointHistoryRepo = mongorepo.NewPointHistoryRepository(db)
		slog.Info("using mongodb storage", "database", cfg.MongoDB.Database)
	default:
		userPointRepo = memory.NewUserPointRepository()
		pointHistoryRepo = memory.NewPointHistoryRepository()
		slog.Info("using in-memory storage")
	}

	// Wire service and handlers.
	pointService := services.NewPointService(userPointRepo, pointHistoryRepo)
	pointHandler := handlers.NewPointHandler(pointService)

	router := routes.SetupRouter(cfg, pointHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("server starting", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}

// setupLogger installs a JSON slog handler at the configured level.
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
