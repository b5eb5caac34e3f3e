package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/abok-cymk/ai-democratizer/domain"
	"github.com/abok-cymk/ai-democratizer/internal/config"
	"github.com/abok-cymk/ai-democratizer/internal/http/middleware"
	"github.com/abok-cymk/ai-democratizer/internal/infrastructure/auth"
	"github.com/abok-cymk/ai-democratizer/internal/infrastructure/database"
	"github.com/abok-cymk/ai-democratizer/internal/infrastructure/repositories"
	"github.com/abok-cymk/ai-democratizer/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Log    zerolog.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo domain.UserRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	AuthSvc     domain.AuthService
	RateLimiter domain.RateLimiter
	CtxBuilder  *middleware.ContextBuilder
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	db, err := database.Open(cfg.DSN, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	c.UserRepo = repositories.NewUserRepository(c.DB)

	c.PasswordSvc = auth.NewPasswordService(cfg.BcryptCost)
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, log)
	c.RateLimiter = middleware.NewRedisRateLimiter(c.RedisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
	c.CtxBuilder = middleware.NewContextBuilder(c.TokenSvc, c.UserRepo, log)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
