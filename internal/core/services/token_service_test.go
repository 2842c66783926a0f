package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/services"
	"github.com/SscSPs/user_account_service/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "auth-secret-for-tests",
		JWTExpiryDuration:        24 * time.Hour,
		JWTIssuer:                "user-account-service",
		EmailVerificationSecret:  "email-secret-for-tests",
		EmailTokenExpiryDuration: 24 * time.Hour,
	}
}

func TestAuthTokenRoundTrip(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	token, err := svc.IssueAuthToken("user-42")
	require.NoError(t, err)

	userID, err := svc.VerifyAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestEmailTokenRoundTrip(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	token, err := svc.IssueEmailToken("a@x.com")
	require.NoError(t, err)

	email, err := svc.VerifyEmailToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

// A token minted for one purpose must never verify for the other, even though
// both are HS256 JWTs.
func TestTokenPurposesAreDisjoint(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	authToken, err := svc.IssueAuthToken("user-42")
	require.NoError(t, err)
	_, err = svc.VerifyEmailToken(authToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	emailToken, err := svc.IssueEmailToken("a@x.com")
	require.NoError(t, err)
	_, err = svc.VerifyAuthToken(emailToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyAuthToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiryDuration = -time.Minute
	svc := services.NewTokenService(cfg)

	token, err := svc.IssueAuthToken("user-42")
	require.NoError(t, err)

	_, err = svc.VerifyAuthToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestVerifyAuthToken_Tampered(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	token, err := svc.IssueAuthToken("user-42")
	require.NoError(t, err)

	_, err = svc.VerifyAuthToken(token[:len(token)-2] + "xx")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyEmailToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.EmailTokenExpiryDuration = -time.Minute
	svc := services.NewTokenService(cfg)

	token, err := svc.IssueEmailToken("a@x.com")
	require.NoError(t, err)

	_, err = svc.VerifyEmailToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}
