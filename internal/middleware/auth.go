package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

// userKey is the gin context key holding the resolved user.
const userKey = "currentUser"

// RequireAdmin gates admin routes on a resolvable token with the admin
// role. This is view gating, not a security boundary: the token is
// opaque and only checked for existence.
func RequireAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		user, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": service.ErrInvalidCredentials.Error(),
				"status":  http.StatusUnauthorized,
			})
			return
		}
		if user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   true,
				"message": "admin access required",
				"status":  http.StatusForbidden,
			})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}
