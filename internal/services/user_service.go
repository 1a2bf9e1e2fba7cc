// internal/services/user_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/models"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("profile not found")
		}
		return nil, apperrors.Upstream("database error: %v", err)
	}
	return &user, nil
}

// EnsureProfile guarantees a profile row exists for an authenticated
// identity. Existing profiles come back unchanged; a missing one is created
// with a generated alias.
func (s *UserService) EnsureProfile(userID uuid.UUID, email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Upstream("database error: %v", err)
	}

	for attempt := 0; attempt < 5; attempt++ {
		user = models.User{
			BaseModel: models.BaseModel{ID: userID},
			Email:     email,
			Alias:     generatedAlias(),
		}

		createErr := s.db.Create(&user).Error
		if createErr == nil {
			return &user, nil
		}
		if !isUniqueViolation(createErr) {
			return nil, apperrors.Upstream("failed to create profile: %v", createErr)
		}
	}

	return nil, apperrors.Upstream("failed to create profile: alias collisions exhausted")
}

// UpdateAlias changes the display handle. Prior review snapshots keep the
// alias they were written with.
func (s *UserService) UpdateAlias(userID uuid.UUID, alias string) (*models.User, error) {
	alias = strings.TrimSpace(strings.ToLower(alias))
	if !utils.IsValidAlias(alias) {
		return nil, apperrors.Validation("alias must be at least 3 characters of lowercase letters, digits and dashes")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("alias = ? AND id != ?", alias, userID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Upstream("database error: %v", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict("alias %q is already taken", alias)
	}

	if err := s.db.Model(user).Update("alias", alias).Error; err != nil {
		return nil, apperrors.Upstream("failed to update alias: %v", err)
	}

	user.Alias = alias
	return user, nil
}

func generatedAlias() string {
	return "maker-" + uuid.New().String()[:8]
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}
