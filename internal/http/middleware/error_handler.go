package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// errorBody is the uniform error envelope rendered by the terminal handler.
type errorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Stack      string `json:"stack,omitempty"`
	Details    string `json:"details,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// ErrorHandler is the terminal middleware: the only place error responses
// are rendered. Handlers below it attach classified errors with c.Error and
// never write the response themselves.
func ErrorHandler(log zerolog.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// Response already begun: delegate to the platform default.
		if c.Writer.Written() {
			log.Error().Err(err).
				Str("path", c.Request.URL.Path).
				Msg("error after response started")
			return
		}

		renderError(c, err, log, development)
	}
}

// Recovery converts panics into classified internal errors rendered through
// the same envelope.
func Recovery(log zerolog.Logger, development bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		var appErr *domain.AppError
		if err, ok := recovered.(error); ok {
			appErr = domain.NewInternal(err)
		} else {
			appErr = domain.NewInternal(fmt.Errorf("panic: %v", recovered))
		}
		renderError(c, appErr, log, development)
	})
}

// AbortWithError records a classified error and stops the handler chain. The
// terminal ErrorHandler renders it.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func renderError(c *gin.Context, err error, log zerolog.Logger, development bool) {
	appErr := domain.Classify(err)

	rc := RequestContextFrom(c)
	evt := log.Warn()
	if appErr.StatusCode >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Str("ip", rc.IP).
		Str("user_agent", rc.UserAgent).
		Str("user_id", rc.PrincipalID()).
		Int("status", appErr.StatusCode).
		Msg(appErr.Message)

	message := appErr.Message
	if !appErr.Operational && !development {
		message = "Internal Server Error"
	}

	body := errorBody{
		Message:    message,
		StatusCode: appErr.StatusCode,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	if development {
		body.Details = err.Error()
		body.Stack = string(debug.Stack())
	}

	if reqID := c.GetHeader("X-Request-ID"); reqID != "" {
		body.RequestID = reqID
	}

	c.AbortWithStatusJSON(appErr.StatusCode, errorEnvelope{Error: body})
}
