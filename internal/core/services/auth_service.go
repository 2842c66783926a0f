package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/dto"
	"github.com/SscSPs/user_account_service/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	userRepo            portsrepo.UserRepositoryFacade
	sessionRepo         portsrepo.SessionRepository
	tokenSvc            portssvc.TokenSvcFacade
	emailSender         portssvc.EmailSender
	verificationBaseURL string
}

// NewAuthService creates the auth flow orchestrator.
func NewAuthService(
	userRepo portsrepo.UserRepositoryFacade,
	sessionRepo portsrepo.SessionRepository,
	tokenSvc portssvc.TokenSvcFacade,
	emailSender portssvc.EmailSender,
	verificationBaseURL string,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:            userRepo,
		sessionRepo:         sessionRepo,
		tokenSvc:            tokenSvc,
		emailSender:         emailSender,
		verificationBaseURL: verificationBaseURL,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register hashes the password and persists the user together with its REGISTER
// audit row in one repository transaction, then issues the auth token.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid dob", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		SecondaryEmail: req.SecondaryEmail,
		PasswordHash:   hash,
		DOB:            dob,
		Place:          req.Place,
		PhoneNumber:    req.PhoneNumber,
		IsVerified:     false,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.RegisterUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, "", apperrors.ErrDuplicate
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.tokenSvc.IssueAuthToken(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue auth token: %w", err)
	}

	return &user, token, nil
}

// Login resolves the identifier, checks the password, then runs the login
// transaction (ban check, session reuse-or-create, LOGIN audit row). Unknown
// identifier and wrong password return the identical error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByIdentifier(ctx, req.EmailOrUsername)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if _, err := s.sessionRepo.RecordLogin(ctx, user.UserID); err != nil {
		if errors.Is(err, apperrors.ErrUserBanned) {
			return nil, "", apperrors.ErrUserBanned
		}
		return nil, "", fmt.Errorf("failed to record login: %w", err)
	}

	token, err := s.tokenSvc.IssueAuthToken(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue auth token: %w", err)
	}

	return user, token, nil
}

// Logout closes the caller's open session and records the LOGOUT audit row.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.ErrUnauthorized
	}
	if err := s.sessionRepo.CloseSession(ctx, userID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

// RequestEmailVerification issues an email token for the address and dispatches
// the verification mail carrying the confirm link.
func (s *authService) RequestEmailVerification(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up user by email: %w", err)
	}

	token, err := s.tokenSvc.IssueEmailToken(email)
	if err != nil {
		return fmt.Errorf("failed to issue email token: %w", err)
	}

	link := fmt.Sprintf("%s/api/v2/user/verify-token/%s", s.verificationBaseURL, token)
	if err := s.emailSender.Send(ctx, email, "Email Verification", link); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// ConfirmEmailVerification verifies the token and flips is_verified for the
// decoded email's user. An unknown email is a NotFound, never a silent success.
func (s *authService) ConfirmEmailVerification(ctx context.Context, token string) error {
	email, err := s.tokenSvc.VerifyEmailToken(token)
	if err != nil {
		return err
	}
	if err := s.userRepo.MarkUserVerified(ctx, email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	return nil
}
