package services

// TokenSvcFacade issues and verifies the two signed token kinds the service
// uses. Tokens are stateless; nothing is persisted. Auth tokens and email
// verification tokens are signed with separate secrets and issuer namespaces so
// one can never stand in for the other.
type TokenSvcFacade interface {
	// IssueAuthToken mints a signed, time-limited token carrying the user ID.
	IssueAuthToken(userID string) (string, error)

	// VerifyAuthToken validates a token and returns the embedded user ID. It
	// returns apperrors.ErrTokenExpired for a token past expiry and
	// apperrors.ErrTokenInvalid for anything malformed or tampered.
	VerifyAuthToken(token string) (string, error)

	// IssueEmailToken mints a signed, time-limited token carrying an email.
	IssueEmailToken(email string) (string, error)

	// VerifyEmailToken validates an email verification token and returns the
	// embedded email, with the same error contract as VerifyAuthToken.
	VerifyEmailToken(token string) (string, error)
}
