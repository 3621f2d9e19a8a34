package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; it is also
// satisfied by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresAdminRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const adminColumns = `id, email, password_hash, role, is_active, login_attempts,
		lock_until, password_reset_token, password_reset_expires, last_login,
		created_at, updated_at`

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive,
		&a.LoginAttempts, &a.LockUntil, &a.PasswordResetToken,
		&a.PasswordResetExpires, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE email = $1
		LIMIT 1;
	`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE id = $1
		LIMIT 1;
	`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) GetByResetToken(ctx context.Context, tokenDigest string, now time.Time) (*domain.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE password_reset_token = $1 AND password_reset_expires > $2
		LIMIT 1;
	`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, tokenDigest, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by reset token: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) Create(ctx context.Context, admin *domain.Admin) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO admins (id, email, password_hash, role, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, admin.ID, admin.Email, admin.PasswordHash, admin.Role, admin.IsActive,
		admin.CreatedAt, admin.UpdatedAt)

	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, *admin)
	}

	return admins, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE admins SET is_active = $2, updated_at = now() WHERE id = $1
	`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// RecordLoginFailure runs the whole attempt-counter rule in one UPDATE so
// concurrent failed logins against the same account cannot lose an
// increment. Each CASE reads the pre-update row values: an expired lock
// restarts the window at 1 and drops the lock, an active lock is left
// untouched, and an unlocked account whose incremented counter reaches
// the threshold gets locked for lockFor.
func (r *PostgresRepository) RecordLoginFailure(ctx context.Context, id string, threshold int, lockFor time.Duration) (int, *time.Time, error) {
	query := `
		UPDATE admins
		SET login_attempts = CASE
		        WHEN lock_until IS NOT NULL AND lock_until <= now() THEN 1
		        ELSE login_attempts + 1
		    END,
		    lock_until = CASE
		        WHEN lock_until IS NOT NULL AND lock_until <= now() THEN NULL
		        WHEN lock_until IS NULL AND login_attempts + 1 >= $2 THEN now() + make_interval(mins => $3)
		        ELSE lock_until
		    END,
		    updated_at = now()
		WHERE id = $1
		RETURNING login_attempts, lock_until;
	`
	var attempts int
	var lockUntil *time.Time
	err := r.db.QueryRow(ctx, query, id, threshold, int(lockFor.Minutes())).Scan(&attempts, &lockUntil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to record login failure: %w", err)
	}

	return attempts, lockUntil, nil
}

func (r *PostgresRepository) RecordLoginSuccess(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins
		SET login_attempts = 0, lock_until = NULL, last_login = $2, updated_at = now()
		WHERE id = $1
	`, id, at)
	return err
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, id, tokenDigest string, expires time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins
		SET password_reset_token = $2, password_reset_expires = $3, updated_at = now()
		WHERE id = $1
	`, id, tokenDigest, expires)
	return err
}

func (r *PostgresRepository) ClearResetToken(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins
		SET password_reset_token = NULL, password_reset_expires = NULL, updated_at = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins
		SET password_hash = $2, password_reset_token = NULL, password_reset_expires = NULL, updated_at = now()
		WHERE id = $1
	`, id, passwordHash)
	return err
}
