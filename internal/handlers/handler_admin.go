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

// adminHandler handles the privileged ban/unban/delete operations. Every
// request carries the shared admin secret in its body; the service layer
// enforces it.
type adminHandler struct {
	moderationService portssvc.ModerationSvcFacade
}

func newAdminHandler(ms portssvc.ModerationSvcFacade) *adminHandler {
	return &adminHandler{moderationService: ms}
}

// respondModerationError maps the moderation error taxonomy onto HTTP statuses.
func respondModerationError(c *gin.Context, action string, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Unauthorized: Missing or invalid admin secret"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		logger.Error("Moderation action failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
	}
}

// deleteUser godoc
// @Summary Delete a user account
// @Description Removes the user; sessions, audit logs and ban rows cascade.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Target user ID"
// @Param request body dto.AdminActionRequest true "Admin secret"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Wrong admin secret"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /delete-user/{id} [delete]
func (h *adminHandler) deleteUser(c *gin.Context) {
	var req dto.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := h.moderationService.DeleteUser(c.Request.Context(), req.AdminSecret, c.Param("id")); err != nil {
		respondModerationError(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// banUser godoc
// @Summary Ban a user
// @Description Records a ban with the given reason; banned users cannot log in.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Target user ID"
// @Param request body dto.BanUserRequest true "Admin secret and reason"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Wrong admin secret"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ban-user/{id} [post]
func (h *adminHandler) banUser(c *gin.Context) {
	var req dto.BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := h.moderationService.BanUser(c.Request.Context(), req.AdminSecret, c.Param("id"), req.Reason); err != nil {
		respondModerationError(c, "ban", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User banned successfully"})
}

// unbanUser godoc
// @Summary Unban a user
// @Description Removes every ban row for the user; idempotent.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Target user ID"
// @Param request body dto.AdminActionRequest true "Admin secret"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Wrong admin secret"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /unban-user/{id} [post]
func (h *adminHandler) unbanUser(c *gin.Context) {
	var req dto.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := h.moderationService.UnbanUser(c.Request.Context(), req.AdminSecret, c.Param("id")); err != nil {
		respondModerationError(c, "unban", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User unbanned successfully"})
}
