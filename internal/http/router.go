package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/domain"
	"github.com/abok-cymk/ai-democratizer/internal/http/handlers"
	"github.com/abok-cymk/ai-democratizer/internal/http/middleware"
)

// RouterDeps collects everything the router needs wired in.
type RouterDeps struct {
	Auth        *handlers.AuthHandlers
	Users       *handlers.UserHandlers
	CtxBuilder  *middleware.ContextBuilder
	RateLimiter domain.RateLimiter
	Log         zerolog.Logger
	Development bool
}

func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(d.Log, d.Development),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.ErrorHandler(d.Log, d.Development),
		d.CtxBuilder.Middleware(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth").Use(middleware.RateLimit(d.RateLimiter, d.Log))
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/me", d.Auth.Me)
	auth.POST("/logout", d.Auth.Logout)

	r.PATCH("/profile", d.Users.UpdateMe)

	users := r.Group("/users")
	users.GET("/:id", d.Users.Get)
	users.PATCH("/:id/role", d.Users.UpdateRole)
	users.PATCH("/:id/status", d.Users.UpdateStatus)

	return r
}
