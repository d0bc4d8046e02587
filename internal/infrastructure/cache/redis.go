// Package cache wraps the optional Redis connection.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renaspress/renaspress-backend/internal/domain/ports"
)

// NewRedisClient connects to redisURL and pings it. An empty URL returns a
// nil client; callers treat that as "Redis disabled".
func NewRedisClient(ctx context.Context, redisURL string, logger ports.Logger) (*redis.Client, error) {
	if redisURL == "" {
		logger.Warn("REDIS_URL not set, rate limiting disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("redis connected", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}
