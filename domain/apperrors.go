package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Kind identifies the error taxonomy bucket an AppError belongs to.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindRateLimited    Kind = "rate_limited"
	KindInternal       Kind = "internal"
)

// AppError is a classified error: a fixed (kind, status, message, operational)
// tuple carried up the stack unchanged until the terminal error handler
// renders it. Operational errors surface their message verbatim; internal
// ones are masked outside development mode.
type AppError struct {
	Kind        Kind
	StatusCode  int
	Message     string
	Operational bool
	Err         error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is lets errors.Is match two AppErrors by kind.
func (e *AppError) Is(target error) bool {
	var ae *AppError
	if errors.As(target, &ae) {
		return e.Kind == ae.Kind
	}
	return false
}

func newAppError(kind Kind, status int, msg string, cause error) *AppError {
	return &AppError{
		Kind:        kind,
		StatusCode:  status,
		Message:     msg,
		Operational: status < http.StatusInternalServerError,
		Err:         cause,
	}
}

// NewValidation reports malformed or invalid client input.
func NewValidation(msg string) *AppError {
	return newAppError(KindValidation, http.StatusBadRequest, msg, nil)
}

// NewAuthentication reports a missing or failed authentication.
func NewAuthentication(msg string) *AppError {
	if msg == "" {
		msg = "Authentication required"
	}
	return newAppError(KindAuthentication, http.StatusUnauthorized, msg, nil)
}

// NewAuthorization reports an authenticated caller lacking permission.
func NewAuthorization(msg string) *AppError {
	if msg == "" {
		msg = "Insufficient permissions"
	}
	return newAppError(KindAuthorization, http.StatusForbidden, msg, nil)
}

// NewNotFound reports a missing resource.
func NewNotFound(msg string) *AppError {
	if msg == "" {
		msg = "Resource not found"
	}
	return newAppError(KindNotFound, http.StatusNotFound, msg, nil)
}

// NewConflict reports a uniqueness or state conflict.
func NewConflict(msg string) *AppError {
	return newAppError(KindConflict, http.StatusConflict, msg, nil)
}

// NewRateLimited reports a throttled client.
func NewRateLimited(msg string) *AppError {
	if msg == "" {
		msg = "Too many requests"
	}
	return newAppError(KindRateLimited, http.StatusTooManyRequests, msg, nil)
}

// NewInternal wraps an unexpected failure. Internal errors are
// non-operational: their real message is only exposed in development mode.
func NewInternal(cause error) *AppError {
	e := newAppError(KindInternal, http.StatusInternalServerError, "Internal Server Error", cause)
	e.Operational = false
	return e
}

// Classify maps any error to an AppError. Tagged variants are matched first
// as a total function over the closed taxonomy; the ordered substring table
// below is kept only as a last-resort bridge for untyped driver failures and
// is a documented weak point.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case errors.Is(err, ErrTokenExpired):
		return NewAuthentication("Authentication token expired")
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenMalformed):
		return NewAuthentication("Invalid authentication token")
	case errors.Is(err, ErrUnauthenticated):
		return NewAuthentication("")
	case errors.Is(err, ErrInvalidCredentials):
		return NewAuthentication("Invalid email or password")
	case errors.Is(err, ErrUserInactive):
		return NewAuthentication("Account is disabled. Please contact support.")
	case errors.Is(err, ErrInsufficientRole), errors.Is(err, ErrNotResourceOwner):
		return NewAuthorization("")
	case errors.Is(err, ErrUserNotFound):
		return NewNotFound("User not found")
	case errors.Is(err, ErrEmailTaken):
		return NewConflict("An account with this email already exists")
	case errors.Is(err, ErrUsernameTaken):
		return NewConflict("This username is already taken")
	}

	// Substring bridge, evaluated top to bottom; first match wins.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"):
		return NewConflict("Resource already exists")
	case strings.Contains(msg, "unique constraint"):
		return NewConflict("Resource already exists")
	case strings.Contains(msg, "record to update not found"):
		return NewNotFound("Resource not found")
	case strings.Contains(msg, "foreign key constraint"):
		return NewValidation("Invalid reference to related resource")
	}

	return NewInternal(err)
}
