package services

import (
	"errors"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/platform/config"
	"github.com/SscSPs/user_account_service/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService implements TokenSvcFacade on top of HS256 JWTs. Auth tokens and
// email verification tokens use separate secrets and issuer namespaces so that
// a token issued for one purpose never verifies for the other.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new stateless token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueAuthToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

func (s *tokenService) VerifyAuthToken(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return "", mapJWTError(err)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}

func (s *tokenService) IssueEmailToken(email string) (string, error) {
	return utils.GenerateJWT(email, s.cfg.EmailVerificationSecret, s.cfg.EmailTokenExpiryDuration, s.cfg.EmailTokenIssuer())
}

func (s *tokenService) VerifyEmailToken(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.EmailVerificationSecret, s.cfg.EmailTokenIssuer())
	if err != nil {
		return "", mapJWTError(err)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// mapJWTError collapses the jwt library's error surface into the two sentinel
// errors the rest of the system distinguishes.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return apperrors.ErrTokenExpired
	}
	return apperrors.ErrTokenInvalid
}
