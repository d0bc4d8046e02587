package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

// Limiter counts requests per scope and client.
type Limiter interface {
	Allow(ctx context.Context, scope, id string, limit int, window time.Duration) (bool, error)
}

type RateLimitMiddleware struct {
	limiter Limiter
	window  time.Duration
	logger  ports.Logger
	onError ErrorWriter
}

func NewRateLimitMiddleware(limiter Limiter, window time.Duration, logger ports.Logger, onError ErrorWriter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		window:  window,
		logger:  logger,
		onError: onError,
	}
}

// Limit allows limit requests per window for each client in scope. Signed-in
// callers are counted by user id, others by client IP. Limiter failures let
// the request through.
func (m *RateLimitMiddleware) Limit(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.ClientIP()
		if user := CurrentUser(c); user != nil {
			id = "user:" + user.ID
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), scope, id, limit, m.window)
		if err != nil {
			m.logger.Warn("rate limiter unavailable", "scope", scope, "error", err)
		}
		if !allowed {
			metrics.RateLimitRejections.WithLabelValues(scope).Inc()
			c.Header("Retry-After", formatSeconds(m.window))
			m.onError(c, errors.ErrRateLimited)
			return
		}

		c.Next()
	}
}

func formatSeconds(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
