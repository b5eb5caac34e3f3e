package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates an in-memory Redis instance for testing.
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedisRateLimiter_AllowsUnderLimit(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 3)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
}

func TestRedisRateLimiter_RejectsOverLimit(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 3)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(context.Background(), "10.0.0.1")
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request in the window must be rejected")

	// Another client is counted independently.
	allowed, err = limiter.Allow(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

// The very first increment must also arm the window expiry, otherwise the
// counter key lives forever and the client stays locked out.
func TestRedisRateLimiter_WindowKeyCarriesTTL(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 3)

	_, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)

	ttl := client.TTL(context.Background(), "ratelimit:10.0.0.1").Val()
	assert.Greater(t, ttl, time.Duration(0), "counter key must expire with the window")
}

func TestRedisRateLimiter_WindowExpiryResetsCount(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 2)

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(context.Background(), "10.0.0.1")
		require.NoError(t, err)
	}
	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(time.Minute + time.Second)

	allowed, err = limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "a fresh window starts with a fresh count")
}

func TestRedisRateLimiter_ErrorWhenRedisDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 3)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err, "callers decide fail-open behavior on limiter errors")
}
