package mocks

import (
	"context"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc      func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc     func(ctx context.Context, user *domain.User)
	GetProfileFunc func(ctx context.Context, userID string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: "mock-user-id", Email: input.Email, Username: input.Username, Role: domain.RoleUser, IsActive: true},
		Token: "mock-token",
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: "mock-user-id", Email: email, Role: domain.RoleUser, IsActive: true},
		Token: "mock-token",
	}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, user *domain.User) {
	if m.LogoutFunc != nil {
		m.LogoutFunc(ctx, user)
	}
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
