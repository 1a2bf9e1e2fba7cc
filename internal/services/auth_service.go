// internal/services/auth_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/config"
	"github.com/hearthmade/storefront-backend/internal/models"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Alias    string `json:"alias" validate:"omitempty,alias"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int          `json:"expiresIn"`
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.FirstValidationMessage(err))
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Upstream("database error: %v", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict("an account with this email already exists")
	}

	alias := strings.TrimSpace(strings.ToLower(req.Alias))
	if alias == "" {
		alias = generatedAlias()
	} else {
		if err := s.db.Model(&models.User{}).Where("alias = ?", alias).Count(&count).Error; err != nil {
			return nil, apperrors.Upstream("database error: %v", err)
		}
		if count > 0 {
			return nil, apperrors.Conflict("alias %q is already taken", alias)
		}
	}

	user := models.User{
		Email: email,
		Alias: alias,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Upstream("failed to hash password: %v", err)
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperrors.Upstream("failed to create user: %v", err)
	}

	return s.issueTokens(&user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.FirstValidationMessage(err))
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated("invalid email or password")
		}
		return nil, apperrors.Upstream("database error: %v", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", &now).Error; err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to record last login")
	}

	return s.issueTokens(&user)
}

// RefreshToken exchanges a refresh token for fresh credentials. The user row
// is re-read here, so a role change granted since the last issuance takes
// effect on the new access token.
func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	subject, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid or expired refresh token")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid or expired refresh token")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated("account no longer exists")
		}
		return nil, apperrors.Upstream("database error: %v", err)
	}

	return s.issueTokens(&user)
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, user.Alias, user.Admin, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, apperrors.Upstream("failed to generate access token: %v", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, apperrors.Upstream("failed to generate refresh token: %v", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
