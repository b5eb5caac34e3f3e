package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/domain"
	"github.com/abok-cymk/ai-democratizer/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies.
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, zerolog.Nop())
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           "user-1",
		Email:        "test@example.com",
		Username:     "testuser",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hashed_Password1",
		Level:        1,
		LastActive:   time.Now(),
		Theme:        "system",
		Language:     "en",
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// validRegisterInput returns input passing every validation rule.
func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		Email:     "newuser@example.com",
		Username:  "new_user",
		FirstName: "New",
		LastName:  "User",
		Password:  "Password1",
	}
}
