package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware attaches the caller's session identifier to the request
// context when a user ID is present. It never rejects on authorization grounds;
// that is the token gate's job. Requests without a user ID pass through
// untouched, as do users with no session row.
func SessionMiddleware(sessionRepo portsrepo.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Next()
			return
		}

		session, err := sessionRepo.FindSessionByUserID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.Next()
				return
			}
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to look up session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), sessionIDKey, session.SessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
