package repositories

import (
	"context"

	"github.com/SscSPs/user_account_service/internal/core/domain"
)

// ModerationRepository owns ban state and privileged user removal. Each mutation
// verifies target existence and applies the write inside one transaction.
type ModerationRepository interface {
	// BanUser inserts a ban row for the target user. A missing target yields
	// apperrors.ErrNotFound. Repeated bans accumulate as separate rows.
	BanUser(ctx context.Context, ban domain.BannedUser) error

	// UnbanUser deletes every ban row for the user. It is idempotent: unbanning
	// a user with no ban rows succeeds. A missing target yields apperrors.ErrNotFound.
	UnbanUser(ctx context.Context, userID string) error

	// IsBanned reports whether at least one ban row exists for the user.
	IsBanned(ctx context.Context, userID string) (bool, error)

	// DeleteUser removes the user row; sessions, audit logs and ban rows cascade
	// at the schema level. A missing target yields apperrors.ErrNotFound.
	DeleteUser(ctx context.Context, userID string) error
}
