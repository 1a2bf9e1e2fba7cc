// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
)

// Non-2xx responses carry a single {"error": string} body; callers surface
// that string verbatim as the user-visible failure reason.

func SuccessResponse(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func CreatedResponse(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// FailResponse maps an error's kind to its HTTP status. Errors without a
// kind are treated as internal.
func FailResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperrors.KindForbidden:
		status = http.StatusForbidden
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindUpstream:
		status = http.StatusBadGateway
	}

	ErrorResponse(c, status, err.Error())
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetEmailFromContext(c *gin.Context) (string, bool) {
	if email, exists := c.Get("email"); exists {
		if emailStr, ok := email.(string); ok {
			return emailStr, true
		}
	}
	return "", false
}

func IsAdminFromContext(c *gin.Context) bool {
	if admin, exists := c.Get("is_admin"); exists {
		if adminBool, ok := admin.(bool); ok {
			return adminBool
		}
	}
	return false
}
