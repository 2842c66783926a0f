package pgsql

import (
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires every pgx-backed repository to the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:       newPgxUserRepository(pool),
		Session:    newPgxSessionRepository(pool),
		Moderation: newPgxModerationRepository(pool),
		Monitoring: newPgxMonitoringRepository(pool),
	}
}
