package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "test-secret"
database:
  dsn: "host=localhost user=app dbname=app"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "ai-democratizer", cfg.JWTIssuer)
	assert.Equal(t, "ai-democratizer-app", cfg.JWTAudience)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromMissingSecretFails(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 4000
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadFromEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "file-secret"
  ttl: "1h"
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddr)
}

func TestLoadFromBadTTLFails(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "test-secret"
  ttl: "seven days"
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JWT TTL")
}

func TestLoadFromMissingFileFails(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
