package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/abok-cymk/ai-democratizer/domain"
)

const (
	testSecret   = "test-secret-key"
	testIssuer   = "ai-democratizer"
	testAudience = "ai-democratizer-app"
)

func newTestService(ttl time.Duration) domain.TokenService {
	return NewJWTService(testSecret, testIssuer, testAudience, ttl)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Generate("user-123", "a@b.com", domain.RoleModerator)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Email != "a@b.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@b.com")
	}
	if claims.Role != domain.RoleModerator {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleModerator)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry must be after issued-at")
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Generate("user-123", "a@b.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(token)
		if !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("Validate(%q): expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService("another-secret", testIssuer, testAudience, time.Hour)

	token, err := other.Generate("user-123", "a@b.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_IssuerAudienceEnforced(t *testing.T) {
	svc := newTestService(time.Hour)

	tests := []struct {
		name  string
		other domain.TokenService
	}{
		{"wrong issuer", NewJWTService(testSecret, "someone-else", testAudience, time.Hour)},
		{"wrong audience", NewJWTService(testSecret, testIssuer, "another-app", time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.other.Generate("user-123", "a@b.com", domain.RoleUser)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestJWTService_UnknownRoleRejected(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Generate("user-123", "a@b.com", domain.Role("WIZARD"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for unknown role, got %v", err)
	}
}
