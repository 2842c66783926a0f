package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxModerationRepository struct {
	BaseRepository
}

func newPgxModerationRepository(pool *pgxpool.Pool) portsrepo.ModerationRepository {
	return &PgxModerationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ModerationRepository = (*PgxModerationRepository)(nil)

// userExistsInTx checks target existence inside the moderation transaction so
// the check and the mutation are serialized against a concurrent delete.
func userExistsInTx(ctx context.Context, tx pgx.Tx, userID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1);`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *PgxModerationRepository) BanUser(ctx context.Context, ban domain.BannedUser) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	exists, err := userExistsInTx(ctx, tx, ban.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO banned_users (id, user_id, banned_time, reason)
        VALUES ($1, $2, $3, $4);
    `, ban.ID, ban.UserID, ban.BannedTime, ban.Reason)
	if err != nil {
		return fmt.Errorf("failed to insert ban for user %s: %w", ban.UserID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxModerationRepository) UnbanUser(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	exists, err := userExistsInTx(ctx, tx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}

	// Deleting zero rows is fine; unban is idempotent.
	_, err = tx.Exec(ctx, `DELETE FROM banned_users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bans for user %s: %w", userID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxModerationRepository) IsBanned(ctx context.Context, userID string) (bool, error) {
	var banned bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM banned_users WHERE user_id = $1);`, userID,
	).Scan(&banned)
	if err != nil {
		return false, fmt.Errorf("failed to check ban state for user %s: %w", userID, err)
	}
	return banned, nil
}

// DeleteUser removes the user row. Sessions, action logs and ban rows are
// removed by the ON DELETE CASCADE constraints in the schema.
func (r *PgxModerationRepository) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
