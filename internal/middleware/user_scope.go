package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the requesting user's ID in the Gin context.
const userIDKey = contextKey("userID")

// userIDHeader carries the authenticated user's ID. Authentication itself is
// handled upstream (gateway/session layer); this service only scopes data
// access by the identity it is handed.
const userIDHeader = "X-User-ID"

// UserScope extracts the user ID from the trusted upstream header and rejects
// requests that arrive without one.
func UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
			return
		}
		c.Set(string(userIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the requesting user's ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
