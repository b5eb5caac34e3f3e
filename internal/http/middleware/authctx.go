package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// requestContextKey is the gin context key the built request context is
// stored under.
const requestContextKey = "request_context"

// Cookie names recognised as token carriers, in priority order after the
// Authorization header.
var tokenCookies = []string{"auth-token", "token"}

// ContextBuilder builds the per-request authentication context. Invalid or
// expired credentials deliberately degrade to an anonymous context instead of
// failing the request: most operations are public.
type ContextBuilder struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
	log      zerolog.Logger
}

// NewContextBuilder creates a context builder.
func NewContextBuilder(tokenSvc domain.TokenService, userRepo domain.UserRepository, log zerolog.Logger) *ContextBuilder {
	return &ContextBuilder{tokenSvc: tokenSvc, userRepo: userRepo, log: log}
}

// Middleware attaches a fresh RequestContext to every request.
func (b *ContextBuilder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := b.Build(c.Request.Context(), ExtractToken(c), c.ClientIP(), c.Request.UserAgent())
		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// Build resolves a candidate token into a request context. It never returns
// an error: every failure path produces an anonymous context.
func (b *ContextBuilder) Build(ctx context.Context, token, ip, userAgent string) *domain.RequestContext {
	rc := &domain.RequestContext{IP: ip, UserAgent: userAgent}

	if token == "" {
		return rc
	}

	claims, err := b.tokenSvc.Validate(token)
	if err != nil {
		// Bad credentials downgrade to anonymous, never abort.
		b.log.Debug().Err(err).Msg("token rejected, continuing unauthenticated")
		return rc
	}

	user, err := b.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		b.log.Warn().Str("user_id", claims.UserID).
			Msg("token valid but user not found")
		return rc
	}

	if !user.IsActive {
		b.log.Warn().Str("email", user.Email).
			Msg("inactive user attempted to authenticate")
		return rc
	}

	rc.Principal = user
	rc.Authenticated = true

	// Best-effort last-active touch, off the response path. Its completion
	// is not ordered relative to the response.
	go func(id string) {
		touchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.userRepo.TouchLastActive(touchCtx, id); err != nil {
			b.log.Warn().Err(err).Str("user_id", id).
				Msg("failed to update user last active timestamp")
		}
	}(user.ID)

	return rc
}

// ExtractToken pulls the candidate session token from the request: the
// Authorization Bearer header first, then the recognised cookies in order.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	for _, name := range tokenCookies {
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	return ""
}

// RequestContextFrom returns the request context attached by Middleware, or
// an anonymous context when none was attached.
func RequestContextFrom(c *gin.Context) *domain.RequestContext {
	if v, ok := c.Get(requestContextKey); ok {
		if rc, ok := v.(*domain.RequestContext); ok {
			return rc
		}
	}
	return &domain.RequestContext{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}
