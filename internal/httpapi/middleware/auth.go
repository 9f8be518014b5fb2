package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amal-dz/amal/internal/auth"
)

const ContextUserID = "user_id"

// AuthRequired verifies the Bearer access token and stores the user id
// in the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing or invalid authorization header"})
			return
		}

		claims, err := auth.ParseToken(token, secret, auth.TypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Next()
	}
}
