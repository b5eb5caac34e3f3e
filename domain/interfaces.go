package domain

import "context"

// UserRepository defines user data access operations. Read methods returning
// users for responses use a safe projection that never selects the password
// hash; FindByEmailWithPassword is the single credential-check exception.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*User, error)
	UpdateRole(ctx context.Context, id string, role Role) (*User, error)
	SetActive(ctx context.Context, id string, active bool) (*User, error)
	TouchLastActive(ctx context.Context, id string) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations.
type TokenService interface {
	Generate(userID, email string, role Role) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, user *User)
	GetProfile(ctx context.Context, userID string) (*User, error)
}

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// RateLimiter decides whether a client may proceed with a request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
