package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// RedisRateLimiter implements domain.RateLimiter with a fixed window counter
// per key. The window key expires with the window, so Redis handles cleanup.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	window time.Duration
	max    int
}

// NewRedisRateLimiter creates a fixed-window rate limiter.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: "ratelimit:",
		window: window,
		max:    max,
	}
}

// Allow implements domain.RateLimiter.
func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := r.prefix + key

	count, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, fullKey, r.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.max), nil
}

// RateLimit throttles requests per client IP. Limiter failures fail open:
// an unreachable Redis must not take the API down with it.
func RateLimit(limiter domain.RateLimiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if !allowed {
			AbortWithError(c, domain.NewRateLimited("Too many requests from this IP, please try again later."))
			return
		}

		c.Next()
	}
}
