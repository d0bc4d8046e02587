package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

// RateLimiter is a fixed window counter per scope and client kept in Redis.
type RateLimiter struct {
	rdb *redis.Client
}

// NewRateLimiter accepts a nil client, in which case every request is allowed.
func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

// Allow counts one request for id in scope and reports whether it fits in
// limit per window. Redis errors allow the request and are returned so the
// caller can log them.
func (l *RateLimiter) Allow(ctx context.Context, scope, id string, limit int, window time.Duration) (bool, error) {
	if l == nil || l.rdb == nil || limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("rl:%s:%s", scope, id)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		metrics.RedisErrors.WithLabelValues("incr").Inc()
		return true, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, window).Err(); err != nil {
			metrics.RedisErrors.WithLabelValues("expire").Inc()
			return true, err
		}
	}

	return count <= int64(limit), nil
}
