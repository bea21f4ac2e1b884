package middleware

import (
	"net/http"
	"strings"

	"onyxgas/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin read endpoints with the static bearer
// token from configuration. An empty configured token disables the surface.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		expected := config.AppConfig.AdminAPIToken
		if expected == "" || tokenString != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
