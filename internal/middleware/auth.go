package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates the token gate in front of protected routes. The auth
// token travels in an http-only cookie; a missing cookie is a 401, a failed
// verification (tampered or expired) is a 403. A valid token attaches the
// decoded user ID to the request context for downstream handlers.
func AuthMiddleware(cookieName string, tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			logger.Warn("Auth cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := tokenSvc.VerifyAuthToken(token)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				logger.Warn("Auth token expired")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token has expired"})
				return
			}
			logger.Warn("Invalid auth token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token format"})
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		c.Request = c.Request.WithContext(context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger))

		c.Next()
	}
}
