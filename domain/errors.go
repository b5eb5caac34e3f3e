package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUsernameTaken      = errors.New("this username is already taken")
	ErrUserInactive       = errors.New("account is disabled")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Authorization errors
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInsufficientRole = errors.New("insufficient role permissions")
	ErrNotResourceOwner = errors.New("not the resource owner")
)
