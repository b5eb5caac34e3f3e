package domain

import "time"

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser       Role = "USER"
	RoleModerator  Role = "MODERATOR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// AdminRoles is the default privileged set used for ownership overrides.
var AdminRoles = []Role{RoleAdmin, RoleSuperAdmin}

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

// User represents a platform member. PasswordHash is excluded from JSON and
// from every read projection that feeds a response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Website      string    `json:"website,omitempty"`
	Level        int       `json:"level"`
	XP           int       `json:"xp"`
	Streak       int       `json:"streak"`
	LastActive   time.Time `json:"lastActive"`
	Theme        string    `json:"theme"`
	Language     string    `json:"language"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName joins the user's first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AuthRequest represents login credentials.
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents a successful registration or login outcome.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// TokenClaims is the verified payload of a session token.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// RequestContext aggregates per-request authentication state. It is created
// fresh for every request, owned exclusively by that request, and discarded
// when the request ends.
type RequestContext struct {
	Principal     *User
	Authenticated bool
	IP            string
	UserAgent     string
}

// PrincipalID returns the acting user's id, or "" when anonymous.
func (rc *RequestContext) PrincipalID() string {
	if rc == nil || rc.Principal == nil {
		return ""
	}
	return rc.Principal.ID
}
