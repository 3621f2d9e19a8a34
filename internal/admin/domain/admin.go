package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

type Admin struct {
	ID                   string
	Email                string
	PasswordHash         string
	Role                 string
	IsActive             bool
	LoginAttempts        int
	LockUntil            *time.Time
	PasswordResetToken   *string
	PasswordResetExpires *time.Time
	LastLogin            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Locked reports whether the account is under an active lockout at now.
// An expired lock_until counts as unlocked; the row is cleaned up lazily
// on the next failed attempt.
func (a *Admin) Locked(now time.Time) bool {
	return a.LockUntil != nil && a.LockUntil.After(now)
}
