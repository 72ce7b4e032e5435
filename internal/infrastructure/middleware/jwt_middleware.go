// Package middleware holds the gin middleware shared across route groups.
package middleware

import (
	"net/http"
	"strings"

	"kind_contact_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth guards a route group behind a bearer access token. On success
// the caller's user id lands in the context under "user_id".
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired or invalid"})
			return
		}

		// Refresh tokens must not open API routes.
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
