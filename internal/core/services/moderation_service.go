package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/google/uuid"
)

type moderationService struct {
	moderationRepo portsrepo.ModerationRepository
	adminSecret    string
}

// NewModerationService creates the privileged moderation service.
func NewModerationService(moderationRepo portsrepo.ModerationRepository, adminSecret string) portssvc.ModerationSvcFacade {
	return &moderationService{
		moderationRepo: moderationRepo,
		adminSecret:    adminSecret,
	}
}

var _ portssvc.ModerationSvcFacade = (*moderationService)(nil)

// checkAdminSecret gates every moderation call. Constant-time compare so the
// secret cannot be probed byte by byte.
func (s *moderationService) checkAdminSecret(secret string) error {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.adminSecret)) != 1 {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *moderationService) BanUser(ctx context.Context, adminSecret, userID, reason string) error {
	if err := s.checkAdminSecret(adminSecret); err != nil {
		return err
	}
	if userID == "" {
		return apperrors.ErrValidation
	}
	ban := domain.BannedUser{
		ID:         uuid.NewString(),
		UserID:     userID,
		BannedTime: time.Now(),
		Reason:     reason,
	}
	if err := s.moderationRepo.BanUser(ctx, ban); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to ban user: %w", err)
	}
	return nil
}

func (s *moderationService) UnbanUser(ctx context.Context, adminSecret, userID string) error {
	if err := s.checkAdminSecret(adminSecret); err != nil {
		return err
	}
	if userID == "" {
		return apperrors.ErrValidation
	}
	if err := s.moderationRepo.UnbanUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to unban user: %w", err)
	}
	return nil
}

func (s *moderationService) DeleteUser(ctx context.Context, adminSecret, userID string) error {
	if err := s.checkAdminSecret(adminSecret); err != nil {
		return err
	}
	if userID == "" {
		return apperrors.ErrValidation
	}
	if err := s.moderationRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
