// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperrors.Unauthenticated("authentication required"))
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWith(c, apperrors.Unauthenticated("invalid authorization header"))
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			abortWith(c, apperrors.Unauthenticated("invalid or expired token"))
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AdminRequired gates admin routes on the token's admin claim. The claim is
// fixed at issuance: a promotion granted after the token was minted is not
// visible here until the holder refreshes their credential.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAdminFromContext(c) {
			abortWith(c, apperrors.Forbidden("admin access required"))
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present but never
// rejects the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	utils.FailResponse(c, err)
	c.Abort()
}

func setIdentity(c *gin.Context, claims *utils.JWTClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("alias", claims.Alias)
	c.Set("is_admin", claims.Admin)
}
