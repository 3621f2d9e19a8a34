package domain

//go:generate mockgen -destination=../../mocks/mock_admin_repository.go -package=mocks github.com/Sonai2004/My-Portfolio/internal/admin/domain AdminRepository

import (
	"context"
	"time"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	// GetByResetToken matches the stored reset-token digest and requires
	// the expiry to still be in the future at now.
	GetByResetToken(ctx context.Context, tokenDigest string, now time.Time) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	List(ctx context.Context) ([]Admin, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	CountByRole(ctx context.Context, role string) (int, error)

	// RecordLoginFailure applies the attempt-counter rule as a single
	// conditional UPDATE: an expired lock restarts the count at 1, an
	// unlocked account that reaches threshold gets locked for lockFor.
	// It returns the post-update counter and lock.
	RecordLoginFailure(ctx context.Context, id string, threshold int, lockFor time.Duration) (int, *time.Time, error)
	// RecordLoginSuccess zeroes the counter, clears the lock and stamps
	// last_login in one statement.
	RecordLoginSuccess(ctx context.Context, id string, at time.Time) error

	SetResetToken(ctx context.Context, id, tokenDigest string, expires time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	// UpdatePassword stores the new hash and clears any reset token.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
