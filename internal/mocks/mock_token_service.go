package mocks

import (
	"time"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID, email string, role domain.Role) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(userID, email string, role domain.Role) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, role)
	}
	return "token_" + userID, nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    "mock-user-id",
		Email:     "test@example.com",
		Role:      domain.RoleUser,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}
