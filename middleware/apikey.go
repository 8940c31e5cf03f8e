package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin admits callers that either present the admin API key or a
// valid token with the admin role. Used on mutating catalog routes.
func RequireAdmin(secret, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey != "" && c.GetHeader("X-API-KEY") == apiKey {
			c.Next()
			return
		}

		claims, err := parseClaims(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if claims["role"] != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])
		c.Next()
	}
}
