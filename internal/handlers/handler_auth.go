package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/dto"
	"github.com/SscSPs/user_account_service/internal/middleware"
	"github.com/SscSPs/user_account_service/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles the register/login/logout flows.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	cookieName   string
	cookieMaxAge int
	secureCookie bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:  as,
		cookieName:   cfg.AuthCookieName,
		cookieMaxAge: int(cfg.JWTExpiryDuration.Seconds()),
		secureCookie: cfg.IsProduction,
	}
}

// setAuthCookie sets the http-only token cookie on the response.
func (h *authHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", h.secureCookie, true)
}

// clearAuthCookie expires the token cookie.
func (h *authHandler) clearAuthCookie(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
}

// register godoc
// @Summary Register a new user account
// @Description Creates a user, records the REGISTER audit entry and logs the user in via the token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Validation failure or email/username already in use"
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email or username is already in use"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		default:
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// login godoc
// @Summary Log in with email or username
// @Description Authenticates the user, opens a session if none is open and sets the token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Validation failure or invalid credentials"
// @Failure 403 {object} ErrorResponse "User is banned"
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email/username or password"})
		case errors.Is(err, apperrors.ErrUserBanned):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "User is banned"})
		default:
			logger.Error("Failed to log in user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// logout godoc
// @Summary Log out
// @Description Closes the caller's open session, records the LOGOUT audit entry and clears the token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse "No valid token or no open session"
// @Failure 500 {object} ErrorResponse
// @Router /logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		default:
			logger.Error("Failed to log out user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	h.clearAuthCookie(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
