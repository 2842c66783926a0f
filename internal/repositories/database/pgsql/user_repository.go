package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/SscSPs/user_account_service/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the SQLSTATE raised when the users table unique
// constraints fire; the schema-level backstop for the in-transaction check.
const pgUniqueViolation = "23505"

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Name:           d.Name,
		Username:       d.Username,
		Email:          d.Email,
		SecondaryEmail: d.SecondaryEmail,
		PasswordHash:   d.PasswordHash,
		DOB:            d.DOB,
		Place:          d.Place,
		PhoneNumber:    d.PhoneNumber,
		IsVerified:     d.IsVerified,
		CreatedAt:      d.CreatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Username:       m.Username,
		Email:          m.Email,
		SecondaryEmail: m.SecondaryEmail,
		PasswordHash:   m.PasswordHash,
		DOB:            m.DOB,
		Place:          m.Place,
		PhoneNumber:    m.PhoneNumber,
		IsVerified:     m.IsVerified,
		CreatedAt:      m.CreatedAt,
	}
}

const userColumns = `user_id, name, username, email, secondary_email, password_hash, dob, place, phone_number, is_verified, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Username,
		&m.Email,
		&m.SecondaryEmail,
		&m.PasswordHash,
		&m.DOB,
		&m.Place,
		&m.PhoneNumber,
		&m.IsVerified,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

// RegisterUser creates the user and its REGISTER audit row in one transaction.
// The duplicate check runs inside the transaction; the unique constraints on
// email and username catch the races the check alone cannot.
func (r *PgxUserRepository) RegisterUser(ctx context.Context, user domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2);`,
		user.Email, user.Username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing user: %w", err)
	}
	if exists {
		return apperrors.ErrDuplicate
	}

	m := toModelUser(user)
	_, err = tx.Exec(ctx, `
        INSERT INTO users (user_id, name, username, email, secondary_email, password_hash, dob, place, phone_number, is_verified, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `,
		m.UserID,
		m.Name,
		m.Username,
		m.Email,
		m.SecondaryEmail,
		m.PasswordHash,
		m.DOB,
		m.Place,
		m.PhoneNumber,
		m.IsVerified,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err := insertActionLogInTx(ctx, tx, user.UserID, domain.ActionRegister, user.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert register action log: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByIdentifier(ctx context.Context, emailOrUsername string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR username = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, emailOrUsername))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by identifier: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) ListUsernames(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := r.Pool.Query(ctx, `SELECT user_id, username FROM users ORDER BY username;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	summaries := []domain.UserSummary{}
	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.UserID, &s.Username); err != nil {
			return nil, fmt.Errorf("failed to scan username row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating username rows: %w", rows.Err())
	}
	return summaries, nil
}

func (r *PgxUserRepository) MarkUserVerified(ctx context.Context, email string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE users SET is_verified = TRUE WHERE email = $1;`, email)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
