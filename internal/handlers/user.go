// internal/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hearthmade/storefront-backend/internal/services"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Alias string `json:"alias"`
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// Update handles PATCH /users/me. Only the alias is self-editable.
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.userService.UpdateAlias(userID, req.Alias)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": profile})
}

// Ensure handles POST /users/ensure. Safe to call on every sign-in; an
// existing profile comes back untouched.
func (h *UserHandler) Ensure(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	email, _ := utils.GetEmailFromContext(c)

	profile, err := h.userService.EnsureProfile(userID, email)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}

	return userID, true
}
