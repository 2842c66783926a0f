package services

import (
	"context"

	"github.com/SscSPs/user_account_service/internal/core/domain"
	"github.com/SscSPs/user_account_service/internal/dto"
)

// AuthSvcFacade orchestrates the register/login/logout/verify-email flows.
// Each state-changing flow executes as one atomic transaction against the store.
type AuthSvcFacade interface {
	// Register creates a new user and returns it with a fresh auth token.
	// A taken email or username yields apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// Login authenticates by email or username. Unknown identifier and wrong
	// password both yield apperrors.ErrInvalidCredentials; a banned user yields
	// apperrors.ErrUserBanned and no rows are written.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)

	// Logout closes the caller's open session. No open session yields
	// apperrors.ErrUnauthorized.
	Logout(ctx context.Context, userID string) error

	// RequestEmailVerification issues an email token for the user owning the
	// address and dispatches the verification mail. An unknown address yields
	// apperrors.ErrNotFound.
	RequestEmailVerification(ctx context.Context, email string) error

	// ConfirmEmailVerification verifies the token and marks the decoded email's
	// user as verified. A bad token yields apperrors.ErrTokenInvalid or
	// apperrors.ErrTokenExpired; an unknown email yields apperrors.ErrNotFound.
	ConfirmEmailVerification(ctx context.Context, token string) error
}

// EmailSender dispatches outbound mail. Implemented by the SMTP adapter.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
