package services

import (
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/platform/config"
)

// NewServiceContainer wires every service to its repositories and configuration.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer, emailSender portssvc.EmailSender) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	return &portssvc.ServiceContainer{
		Token:      tokenSvc,
		Auth:       NewAuthService(repos.User, repos.Session, tokenSvc, emailSender, cfg.VerificationBaseURL),
		User:       NewUserService(repos.User),
		Moderation: NewModerationService(repos.Moderation, cfg.AdminSecret),
	}
}
