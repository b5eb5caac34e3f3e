package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	log         zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	log zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		log:         log,
	}
}

// Register implements domain.AuthService. Input shape is enforced at the
// transport boundary; the service only checks business rules.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if existing, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
		Level:        1,
		LastActive:   time.Now(),
		Theme:        "system",
		Language:     "en",
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user registered successfully")

	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. A missing user and a wrong password
// are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastActive(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).
			Msg("failed to update last active timestamp")
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user logged in successfully")

	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Token: token}, nil
}

// Logout implements domain.AuthService. Tokens expire intrinsically, so
// logout is an audit event only; clients discard their cached token.
func (s *AuthServiceImpl) Logout(ctx context.Context, user *domain.User) {
	s.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user logged out")
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
