package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	Env     string `yaml:"env"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
	TTL      string `yaml:"ttl"`
}

type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type RateLimitConfig struct {
	Window string `yaml:"window"`
	Max    int    `yaml:"max"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

type Config struct {
	Port            string
	Env             string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	JWTAudience     string
	TokenTTL        time.Duration
	BcryptCost      int
	RateLimitWindow time.Duration
	RateLimitMax    int
	LogLevel        string
	LogPretty       bool
}

// IsDevelopment reports whether the runtime mode exposes internal error
// details (stack traces, raw messages) in error bodies.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. The
// process must not start without a JWT secret.
func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom loads configuration from an explicit yaml path.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	secret := env("JWT_SECRET", configFile.JWT.Secret)
	if secret == "" {
		return nil, errors.New("JWT secret is not configured (jwt.secret or JWT_SECRET)")
	}

	ttlStr := env("JWT_TTL", configFile.JWT.TTL)
	if ttlStr == "" {
		ttlStr = "168h" // 7 days
	}
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	windowStr := configFile.RateLimit.Window
	if windowStr == "" {
		windowStr = "15m"
	}
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}

	rateMax := configFile.RateLimit.Max
	if rateMax <= 0 {
		rateMax = 100
	}

	cost := configFile.Auth.BcryptCost
	if v := os.Getenv("BCRYPT_ROUNDS"); v != "" {
		cost, _ = strconv.Atoi(v)
	}
	if cost <= 0 {
		cost = 12
	}

	port := configFile.App.Port
	if port == 0 {
		port = 4000
	}

	return &Config{
		Port:            fmt.Sprintf("%d", port),
		Env:             env("APP_ENV", defaultStr(configFile.App.Env, "development")),
		GinMode:         defaultStr(configFile.App.GinMode, "release"),
		DSN:             env("DATABASE_URL", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", defaultStr(configFile.Redis.Addr, "localhost:6379")),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       secret,
		JWTIssuer:       defaultStr(configFile.JWT.Issuer, "ai-democratizer"),
		JWTAudience:     defaultStr(configFile.JWT.Audience, "ai-democratizer-app"),
		TokenTTL:        ttl,
		BcryptCost:      cost,
		RateLimitWindow: window,
		RateLimitMax:    rateMax,
		LogLevel:        env("LOG_LEVEL", defaultStr(configFile.Log.Level, "info")),
		LogPretty:       configFile.Log.Pretty,
	}, nil
}

func defaultStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
