package middleware

import (
	"net/http"

	"artgallery-app/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

// RequireRole guards routes outside the gate's action set (the admin
// surface). It reads the role resolved by Authorize, so it is as fresh as
// the decision it follows.
func RequireRole(role authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Please login"})
			return
		}

		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Next()
	}
}
