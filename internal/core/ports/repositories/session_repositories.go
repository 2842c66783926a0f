package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/user_account_service/internal/core/domain"
)

// SessionRepository owns login session rows and the audit records written
// alongside them. The mutating operations each run as one transaction so that
// the guarding checks and the writes are serialized against concurrent logins.
type SessionRepository interface {
	// RecordLogin runs the login transaction for an already-authenticated user:
	// reject when banned (apperrors.ErrUserBanned), open a new session only when
	// no open one exists, and always append a LOGIN audit row. It returns the
	// open session, either the reused one or the one just created.
	RecordLogin(ctx context.Context, userID string) (*domain.UserSession, error)

	// CloseSession sets the logout time on the user's open session and appends a
	// LOGOUT audit row in the same transaction. No open session yields
	// apperrors.ErrUnauthorized.
	CloseSession(ctx context.Context, userID string, logoutTime time.Time) error

	// FindSessionByUserID returns the most recent session row for the user, open
	// or closed, or apperrors.ErrNotFound.
	FindSessionByUserID(ctx context.Context, userID string) (*domain.UserSession, error)

	// FindActiveSession returns the user's open session, or apperrors.ErrNotFound.
	FindActiveSession(ctx context.Context, userID string) (*domain.UserSession, error)
}
