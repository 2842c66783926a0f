package middleware

import (
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context values set by middleware.
// Using a custom type prevents collisions.
type contextKey string

const (
	userIDKey    = contextKey("userID")
	sessionIDKey = contextKey("sessionID")
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID attached by the
// token gate. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetSessionIDFromContext retrieves the session identifier attached by the
// session middleware, if any.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(sessionIDKey); v != nil {
		if sessionID, ok := v.(string); ok {
			return sessionID, true
		}
	}
	return "", false
}
