package service_test

import (
	"context"
	"testing"

	"github.com/Sonai2004/My-Portfolio/config"
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	"github.com/Sonai2004/My-Portfolio/internal/admin/dto"
	"github.com/Sonai2004/My-Portfolio/internal/admin/service"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/Sonai2004/My-Portfolio/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo, testConfig())

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "admin-123").
			Return(&domain.Admin{ID: "admin-123", Email: "admin@example.com", Role: domain.RoleAdmin}, nil)

		out, err := s.Profile(context.Background(), "admin-123")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", out.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		_, err := s.Profile(context.Background(), "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAdminService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo, testConfig())

	t.Run("success with default role", func(t *testing.T) {
		var created *domain.Admin
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *domain.Admin) error {
				created = admin
				return nil
			})

		out, err := s.Create(context.Background(), dto.CreateAdminInput{
			Email:    "new@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.RoleAdmin, out.Role)
		assert.True(t, out.IsActive)
		assert.NotEmpty(t, created.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-password")))
	})

	t.Run("email already in use", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(&domain.Admin{ID: "other", Email: "taken@example.com"}, nil)

		_, err := s.Create(context.Background(), dto.CreateAdminInput{
			Email:    "taken@example.com",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyInUse)
	})
}

func TestAdminService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo, testConfig())

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "admin-456").Return(nil)

		err := s.Delete(context.Background(), "admin-456", "admin-123")
		assert.NoError(t, err)
	})

	t.Run("self deletion rejected", func(t *testing.T) {
		err := s.Delete(context.Background(), "admin-123", "admin-123")
		assert.ErrorIs(t, err, apperrors.ErrSelfDeletion)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "ghost").Return(apperrors.ErrNotFound)

		err := s.Delete(context.Background(), "ghost", "admin-123")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAdminService_EnsureDefaultAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)

	cfg := &config.Config{
		BootstrapAdminEmail:    "owner@example.com",
		BootstrapAdminPassword: "bootstrap-password",
	}

	t.Run("creates super-admin when none exists", func(t *testing.T) {
		s := service.NewAdminService(mockRepo, cfg)

		var created *domain.Admin
		mockRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleSuperAdmin).Return(0, nil)
		mockRepo.EXPECT().GetByEmail(gomock.Any(), cfg.BootstrapAdminEmail).Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *domain.Admin) error {
				created = admin
				return nil
			})

		require.NoError(t, s.EnsureDefaultAdmin(context.Background()))
		assert.Equal(t, domain.RoleSuperAdmin, created.Role)
		assert.Equal(t, cfg.BootstrapAdminEmail, created.Email)
	})

	t.Run("no-op when a super-admin exists", func(t *testing.T) {
		s := service.NewAdminService(mockRepo, cfg)

		mockRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleSuperAdmin).Return(1, nil)

		assert.NoError(t, s.EnsureDefaultAdmin(context.Background()))
	})

	t.Run("no-op without bootstrap credentials", func(t *testing.T) {
		s := service.NewAdminService(mockRepo, &config.Config{})

		assert.NoError(t, s.EnsureDefaultAdmin(context.Background()))
	})
}
