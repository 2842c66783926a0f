package repositories

import (
	"context"

	"github.com/SscSPs/user_account_service/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their primary email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByIdentifier retrieves a user whose email or username matches the identifier.
	FindUserByIdentifier(ctx context.Context, emailOrUsername string) (*domain.User, error)

	// ListUsernames retrieves the id/username projection of every user.
	ListUsernames(ctx context.Context) ([]domain.UserSummary, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// RegisterUser persists a new user and its REGISTER audit row in one
	// transaction. The email/username uniqueness check runs inside the same
	// transaction; a clash yields apperrors.ErrDuplicate.
	RegisterUser(ctx context.Context, user domain.User) error

	// MarkUserVerified sets is_verified for the user owning the given email.
	// No matching row yields apperrors.ErrNotFound, never a silent success.
	MarkUserVerified(ctx context.Context, email string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
