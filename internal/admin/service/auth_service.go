package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sonai2004/My-Portfolio/config"
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	"github.com/Sonai2004/My-Portfolio/internal/admin/dto"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/Sonai2004/My-Portfolio/internal/mailer"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo   domain.AdminRepository
	tokens TokenGenerator
	sender mailer.Sender
	cfg    *config.Config
}

func NewAuthService(repo domain.AdminRepository, tokens TokenGenerator, sender mailer.Sender, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		sender: sender,
		cfg:    cfg,
	}
}

// Login evaluates a single login attempt. It returns exactly one of: a
// token+profile, ErrInvalidCredentials, ErrAccountLocked or
// ErrAccountInactive. An attempt against a locked account is not
// counted; a failed attempt is counted through the repository's atomic
// counter update so concurrent failures never under-count.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	admin, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		// Unknown email and wrong password must be indistinguishable.
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if admin.Locked(now) {
		return nil, apperrors.ErrAccountLocked
	}

	if !admin.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		lockFor := time.Duration(s.cfg.LockoutMinutes) * time.Minute
		attempts, lockUntil, ferr := s.repo.RecordLoginFailure(ctx, admin.ID, s.cfg.LoginMaxAttempts, lockFor)
		if ferr != nil {
			// The counter update must never mask the credential result.
			slog.Warn("failed to record login failure", slog.String("admin_id", admin.ID), slog.Any("error", ferr))
		} else if lockUntil != nil {
			slog.Info("admin account locked",
				slog.String("admin_id", admin.ID),
				slog.Int("attempts", attempts),
				slog.Time("lock_until", *lockUntil))
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.repo.RecordLoginSuccess(ctx, admin.ID, now); err != nil {
		slog.Warn("failed to record login success", slog.String("admin_id", admin.ID), slog.Any("error", err))
	}

	token, _, err := s.tokens.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}

	admin.LastLogin = &now
	return &dto.LoginOutput{
		Token: token,
		Admin: toAdminOutput(admin),
	}, nil
}

// RequestReset issues a one-time password-reset token. Only the sha-256
// digest is persisted; the raw token leaves the process exclusively in
// the reset email. If delivery fails the stored digest is cleared again
// so an undeliverable token cannot linger.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperrors.ErrNotFound
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return err
	}

	expires := time.Now().Add(time.Duration(s.cfg.ResetTokenExpiryMin) * time.Minute)
	if err := s.repo.SetResetToken(ctx, admin.ID, digestToken(rawToken), expires); err != nil {
		return err
	}

	if err := s.sender.SendPasswordReset(ctx, admin.Email, rawToken); err != nil {
		if cerr := s.repo.ClearResetToken(ctx, admin.ID); cerr != nil {
			slog.Error("failed to clear reset token after delivery failure",
				slog.String("admin_id", admin.ID), slog.Any("error", cerr))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
	}

	return nil
}

// CompleteReset consumes a reset token. The token is matched by digest
// and must not be expired; it is cleared together with the password
// update so it can only ever be used once.
func (s *AuthService) CompleteReset(ctx context.Context, rawToken, newPassword string) error {
	admin, err := s.repo.GetByResetToken(ctx, digestToken(rawToken), time.Now())
	if err != nil {
		return err
	}
	if admin == nil {
		return apperrors.ErrTokenInvalidOrExpired
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, admin.ID, hash)
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID string, input dto.ChangePasswordInput) error {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperrors.ErrNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apperrors.ErrCurrentPasswordIncorrect
	}

	hash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, admin.ID, hash)
}

// hashPassword is the single place a password turns into a hash; every
// write path calls it exactly once.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func digestToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

func toAdminOutput(admin *domain.Admin) dto.AdminOutput {
	return dto.AdminOutput{
		ID:        admin.ID,
		Email:     admin.Email,
		Role:      admin.Role,
		IsActive:  admin.IsActive,
		LastLogin: admin.LastLogin,
		CreatedAt: admin.CreatedAt,
	}
}
