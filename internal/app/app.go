package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/internal/config"
	httpx "github.com/abok-cymk/ai-democratizer/internal/http"
	"github.com/abok-cymk/ai-democratizer/internal/http/handlers"
)

func Run(cfg *config.Config, log zerolog.Logger) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable at startup, rate limiting will fail open")
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	userH := handlers.NewUserHandlers(c.UserRepo)

	r := httpx.BuildRouter(httpx.RouterDeps{
		Auth:        authH,
		Users:       userH,
		CtxBuilder:  c.CtxBuilder,
		RateLimiter: c.RateLimiter,
		Log:         log,
		Development: cfg.IsDevelopment(),
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	return http.ListenAndServe(addr, r)
}
