package services

import (
	"context"

	"github.com/SscSPs/user_account_service/internal/core/domain"
)

// UserSvcFacade exposes the public, read-only user queries.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID, or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsernames retrieves the id/username projection of every user.
	ListUsernames(ctx context.Context) ([]domain.UserSummary, error)
}
