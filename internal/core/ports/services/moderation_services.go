package services

import "context"

// ModerationSvcFacade exposes the privileged ban/unban/delete operations. Every
// call is gated on the shared admin secret; a mismatch yields
// apperrors.ErrForbidden and no state change.
type ModerationSvcFacade interface {
	// BanUser records a ban with the given reason.
	BanUser(ctx context.Context, adminSecret, userID, reason string) error

	// UnbanUser removes every ban row for the user; idempotent.
	UnbanUser(ctx context.Context, adminSecret, userID string) error

	// DeleteUser removes the user and, via schema cascade, their sessions,
	// audit logs and ban rows.
	DeleteUser(ctx context.Context, adminSecret, userID string) error
}
