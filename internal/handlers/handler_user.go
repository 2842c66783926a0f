package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/dto"
	"github.com/SscSPs/user_account_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles email verification and the public user queries.
type userHandler struct {
	authService portssvc.AuthSvcFacade
	userService portssvc.UserSvcFacade
}

func newUserHandler(as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		authService: as,
		userService: us,
	}
}

// verifyEmail godoc
// @Summary Request an email verification link
// @Description Sends a verification mail carrying a signed, time-limited token to the given address.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.EmailVerificationRequest true "Email address"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown email"
// @Failure 500 {object} ErrorResponse
// @Router /verify-email [post]
func (h *userHandler) verifyEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EmailVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := h.authService.RequestEmailVerification(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to send verification email", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification email sent successfully"})
}

// verifyToken godoc
// @Summary Confirm an email verification token
// @Description Validates the token from the verification link and marks the user as verified.
// @Tags users
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Failure 404 {object} ErrorResponse "No user for the decoded email"
// @Failure 500 {object} ErrorResponse
// @Router /verify-token/{token} [get]
func (h *userHandler) verifyToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token := c.Param("token")

	if err := h.authService.ConfirmEmailVerification(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired token"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to confirm email verification", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email verified successfully"})
}

// getAllUsernames godoc
// @Summary List all usernames
// @Description Returns the id/username projection of every account.
// @Tags users
// @Produce json
// @Success 200 {array} dto.UsernameResponse
// @Failure 500 {object} ErrorResponse
// @Router /get-all-usernames [get]
func (h *userHandler) getAllUsernames(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.userService.ListUsernames(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list usernames", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUsernameResponses(summaries))
}

// getUser godoc
// @Summary Get a user's public details
// @Description Returns the id/username/email view of one account.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.PublicUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /get-user/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to get user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUserResponse(user))
}
