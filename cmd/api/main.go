package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/api"
	"github.com/cookbookd/backend/internal/database"
	"github.com/cookbookd/backend/internal/logger"
	"github.com/cookbookd/backend/internal/server"
)

func main() {
	logger.Init()
	defer logger.Sync()
	log := logger.L()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("connecting to database", zap.Error(err))
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := database.RunMigrations(db, migrationsDir); err != nil {
		log.Fatal("running migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("connecting to redis", zap.Error(err))
	}
	if redisClient == nil {
		log.Warn("redis not configured, logout cannot revoke tokens")
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatal("configuring object storage", zap.Error(err))
	}
	if s3cfg == nil {
		log.Warn("object storage not configured, image uploads disabled")
	}

	svcs := api.NewServices(db, redisClient, s3cfg, cfg)
	srv := server.New(cfg, svcs)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
