package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/logger"
)

// NewRedisClient creates a redis client for session revocation. Returns nil
// without error when redis is not configured; logout then degrades to
// cookie clearing only.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.L().Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return client, nil
}
