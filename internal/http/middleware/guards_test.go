package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/abok-cymk/ai-democratizer/domain"
)

func authedContext(role domain.Role, id string) *domain.RequestContext {
	return &domain.RequestContext{
		Principal:     &domain.User{ID: id, Email: "test@example.com", Role: role, IsActive: true},
		Authenticated: true,
	}
}

func assertGuardFailure(t *testing.T, err error, wantStatus int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a guard failure")
	}
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an AppError, got %v", err)
	}
	if appErr.StatusCode != wantStatus {
		t.Fatalf("status = %d, want %d", appErr.StatusCode, wantStatus)
	}
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name    string
		rc      *domain.RequestContext
		wantErr bool
	}{
		{"authenticated", authedContext(domain.RoleUser, "u1"), false},
		{"anonymous", &domain.RequestContext{}, true},
		{"nil context", nil, true},
		{"principal without flag", &domain.RequestContext{Principal: &domain.User{ID: "u1"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := RequireAuth(tt.rc)
			if tt.wantErr {
				assertGuardFailure(t, err, http.StatusUnauthorized)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil || user.ID != "u1" {
				t.Fatalf("unexpected principal: %+v", user)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		rc         *domain.RequestContext
		roles      []domain.Role
		wantStatus int
	}{
		{"role in set", authedContext(domain.RoleModerator, "u1"), []domain.Role{domain.RoleModerator, domain.RoleAdmin}, 0},
		{"role not in set", authedContext(domain.RoleUser, "u1"), []domain.Role{domain.RoleAdmin}, http.StatusForbidden},
		{"anonymous fails with authentication", &domain.RequestContext{}, []domain.Role{domain.RoleAdmin}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RequireRole(tt.rc, tt.roles...)
			if tt.wantStatus == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			assertGuardFailure(t, err, tt.wantStatus)
		})
	}
}

func TestRequireOwnershipOrRole(t *testing.T) {
	tests := []struct {
		name       string
		rc         *domain.RequestContext
		ownerID    string
		roles      []domain.Role
		wantStatus int
	}{
		{"owner regardless of role", authedContext(domain.RoleUser, "u1"), "u1", nil, 0},
		{"admin regardless of ownership", authedContext(domain.RoleAdmin, "u2"), "u1", nil, 0},
		{"super admin regardless of ownership", authedContext(domain.RoleSuperAdmin, "u2"), "u1", nil, 0},
		{"moderator is not in the default admin set", authedContext(domain.RoleModerator, "u2"), "u1", nil, http.StatusForbidden},
		{"neither owner nor admin", authedContext(domain.RoleUser, "u2"), "u1", nil, http.StatusForbidden},
		{"explicit role set overrides default", authedContext(domain.RoleModerator, "u2"), "u1", []domain.Role{domain.RoleModerator}, 0},
		{"anonymous", &domain.RequestContext{}, "u1", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RequireOwnershipOrRole(tt.rc, tt.ownerID, tt.roles...)
			if tt.wantStatus == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			assertGuardFailure(t, err, tt.wantStatus)
		})
	}
}
