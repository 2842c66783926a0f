package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/SscSPs/user_account_service/internal/models"
	"github.com/SscSPs/user_account_service/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func toDomainSession(m models.UserSession) domain.UserSession {
	return domain.UserSession{
		ID:         m.ID,
		UserID:     m.UserID,
		SessionID:  m.SessionID,
		LoginTime:  m.LoginTime,
		LogoutTime: m.LogoutTime,
	}
}

const sessionColumns = `id, user_id, session_id, login_time, logout_time`

func scanSession(row pgx.Row) (*domain.UserSession, error) {
	var m models.UserSession
	err := row.Scan(&m.ID, &m.UserID, &m.SessionID, &m.LoginTime, &m.LogoutTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	s := toDomainSession(m)
	return &s, nil
}

// RecordLogin runs the login transaction: ban check, session reuse-or-create,
// LOGIN audit row. The open-session lookup takes a row lock so two concurrent
// logins for the same user cannot both create a session.
func (r *PgxSessionRepository) RecordLogin(ctx context.Context, userID string) (*domain.UserSession, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var banned bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM banned_users WHERE user_id = $1);`, userID,
	).Scan(&banned)
	if err != nil {
		return nil, fmt.Errorf("failed to check ban state: %w", err)
	}
	if banned {
		return nil, apperrors.ErrUserBanned
	}

	now := time.Now()

	session, err := scanSession(tx.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM user_sessions WHERE user_id = $1 AND logout_time IS NULL FOR UPDATE;`,
		userID,
	))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up open session: %w", err)
	}

	if session == nil {
		sessionID, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session token: %w", err)
		}
		session = &domain.UserSession{
			ID:        uuid.NewString(),
			UserID:    userID,
			SessionID: sessionID,
			LoginTime: now,
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO user_sessions (id, user_id, session_id, login_time, logout_time)
            VALUES ($1, $2, $3, $4, NULL);
        `, session.ID, session.UserID, session.SessionID, session.LoginTime)
		if err != nil {
			return nil, fmt.Errorf("failed to insert session: %w", err)
		}
	}

	if err := insertActionLogInTx(ctx, tx, userID, domain.ActionLogin, now); err != nil {
		return nil, fmt.Errorf("failed to insert login action log: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return session, nil
}

// CloseSession closes the user's open session and appends the LOGOUT audit row.
func (r *PgxSessionRepository) CloseSession(ctx context.Context, userID string, logoutTime time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE user_sessions SET logout_time = $1 WHERE user_id = $2 AND logout_time IS NULL;`,
		logoutTime, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnauthorized
	}

	if err := insertActionLogInTx(ctx, tx, userID, domain.ActionLogout, logoutTime); err != nil {
		return fmt.Errorf("failed to insert logout action log: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSessionRepository) FindSessionByUserID(ctx context.Context, userID string) (*domain.UserSession, error) {
	session, err := scanSession(r.Pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM user_sessions WHERE user_id = $1 ORDER BY login_time DESC LIMIT 1;`,
		userID,
	))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find session for user %s: %w", userID, err)
	}
	return session, nil
}

func (r *PgxSessionRepository) FindActiveSession(ctx context.Context, userID string) (*domain.UserSession, error) {
	session, err := scanSession(r.Pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM user_sessions WHERE user_id = $1 AND logout_time IS NULL;`,
		userID,
	))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find active session for user %s: %w", userID, err)
	}
	return session, nil
}
