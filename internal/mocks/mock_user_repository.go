package mocks

import (
	"context"
	"sync"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc                  func(ctx context.Context, user *domain.User) error
	FindByIDFunc                func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.User, error)
	FindByEmailWithPasswordFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByUsernameFunc          func(ctx context.Context, username string) (*domain.User, error)
	UpdateFunc                  func(ctx context.Context, user *domain.User) error
	UpdateProfileFunc           func(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
	UpdateRoleFunc              func(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	SetActiveFunc               func(ctx context.Context, id string, active bool) (*domain.User, error)
	TouchLastActiveFunc         func(ctx context.Context, id string) error

	// Touched last-active ids are recorded under a mutex: the context
	// builder fires the touch from its own goroutine.
	mu         sync.Mutex
	touchedIDs []string
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	if user.ID == "" {
		user.ID = "mock-user-id"
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailWithPasswordFunc != nil {
		return m.FindByEmailWithPasswordFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, fields)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) TouchLastActive(ctx context.Context, id string) error {
	m.mu.Lock()
	m.touchedIDs = append(m.touchedIDs, id)
	m.mu.Unlock()
	if m.TouchLastActiveFunc != nil {
		return m.TouchLastActiveFunc(ctx, id)
	}
	return nil
}

// TouchedIDs returns a copy of the ids whose last-active timestamp was
// touched.
func (m *MockUserRepository) TouchedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.touchedIDs...)
}
