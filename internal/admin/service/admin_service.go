package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sonai2004/My-Portfolio/config"
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	"github.com/Sonai2004/My-Portfolio/internal/admin/dto"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/google/uuid"
)

// AdminService manages admin accounts; every operation here is reached
// only through super-admin guarded routes, except Profile.
type AdminService struct {
	repo domain.AdminRepository
	cfg  *config.Config
}

func NewAdminService(repo domain.AdminRepository, cfg *config.Config) *AdminService {
	return &AdminService{repo: repo, cfg: cfg}
}

func (s *AdminService) Profile(ctx context.Context, adminID string) (*dto.AdminOutput, error) {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.ErrNotFound
	}

	out := toAdminOutput(admin)
	return &out, nil
}

func (s *AdminService) List(ctx context.Context) ([]dto.AdminOutput, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminOutput, 0, len(admins))
	for i := range admins {
		out = append(out, toAdminOutput(&admins[i]))
	}
	return out, nil
}

func (s *AdminService) Create(ctx context.Context, input dto.CreateAdminInput) (*dto.AdminOutput, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	role := input.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &domain.Admin{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	out := toAdminOutput(admin)
	return &out, nil
}

func (s *AdminService) SetStatus(ctx context.Context, id string, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Delete removes an admin account. Deleting the account making the
// request is rejected.
func (s *AdminService) Delete(ctx context.Context, id, requesterID string) error {
	if id == requesterID {
		return apperrors.ErrSelfDeletion
	}
	return s.repo.Delete(ctx, id)
}

// EnsureDefaultAdmin creates the bootstrap super-admin from config when
// no super-admin exists yet. Called once at startup.
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context) error {
	if s.cfg.BootstrapAdminEmail == "" || s.cfg.BootstrapAdminPassword == "" {
		return nil
	}

	count, err := s.repo.CountByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	out, err := s.Create(ctx, dto.CreateAdminInput{
		Email:    s.cfg.BootstrapAdminEmail,
		Password: s.cfg.BootstrapAdminPassword,
		Role:     domain.RoleSuperAdmin,
	})
	if err != nil {
		return err
	}

	slog.Info("bootstrap super-admin created", slog.String("email", out.Email))
	return nil
}
