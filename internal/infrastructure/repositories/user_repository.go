package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// safeFields is the projection applied by every read that can feed a
// response. The password column is deliberately absent.
var safeFields = []string{
	"id", "email", "username", "first_name", "last_name", "avatar", "bio",
	"location", "website", "level", "xp", "streak", "last_active", "theme",
	"language", "role", "is_active", "created_at", "updated_at",
}

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:255"`
	Username     string `gorm:"uniqueIndex;size:64"`
	FirstName    string `gorm:"size:64"`
	LastName     string `gorm:"size:64"`
	PasswordHash string `gorm:"column:password"`
	Avatar       string `gorm:"size:512"`
	Bio          string
	Location     string `gorm:"size:128"`
	Website      string `gorm:"size:255"`
	Level        int    `gorm:"default:1"`
	XP           int    `gorm:"column:xp"`
	Streak       int
	LastActive   time.Time
	Theme        string         `gorm:"size:32;default:system"`
	Language     string         `gorm:"size:16;default:en"`
	Role         string         `gorm:"index;size:32"`
	IsActive     bool           `gorm:"index"`
	CreatedAt    time.Time      `gorm:"index"`
	UpdatedAt    time.Time      `gorm:"index"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Both email and username carry unique indexes; re-query to
			// report the conflict the caller can act on.
			if _, lookupErr := r.FindByEmail(ctx, user.Email); lookupErr == nil {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return err
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Select(safeFields).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Select(safeFields).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmailWithPassword implements domain.UserRepository. It is the only
// read that selects the password column; callers must not let the result
// escape into a response.
func (r *UserRepositoryImpl) FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Select(safeFields).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// UpdateProfile implements domain.UserRepository. Allowed column filtering is
// the service's responsibility; the repository applies the map as-is.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// UpdateRole implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return r.UpdateProfile(ctx, id, map[string]any{"role": string(role)})
}

// SetActive implements domain.UserRepository
func (r *UserRepositoryImpl) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return r.UpdateProfile(ctx, id, map[string]any{"is_active": active})
}

// TouchLastActive implements domain.UserRepository. Best effort: callers run
// it off the response path and only log failures.
func (r *UserRepositoryImpl) TouchLastActive(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).
		UpdateColumn("last_active", time.Now()).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		Location:     user.Location,
		Website:      user.Website,
		Level:        user.Level,
		XP:           user.XP,
		Streak:       user.Streak,
		LastActive:   user.LastActive,
		Theme:        user.Theme,
		Language:     user.Language,
		Role:         string(user.Role),
		IsActive:     user.IsActive,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		Username:     dbUser.Username,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		PasswordHash: dbUser.PasswordHash,
		Avatar:       dbUser.Avatar,
		Bio:          dbUser.Bio,
		Location:     dbUser.Location,
		Website:      dbUser.Website,
		Level:        dbUser.Level,
		XP:           dbUser.XP,
		Streak:       dbUser.Streak,
		LastActive:   dbUser.LastActive,
		Theme:        dbUser.Theme,
		Language:     dbUser.Language,
		Role:         domain.Role(dbUser.Role),
		IsActive:     dbUser.IsActive,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
