package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sonai2004/My-Portfolio/config"
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	"github.com/Sonai2004/My-Portfolio/internal/admin/dto"
	"github.com/Sonai2004/My-Portfolio/internal/admin/handler"
	"github.com/Sonai2004/My-Portfolio/internal/admin/service"
	"github.com/Sonai2004/My-Portfolio/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		LoginMaxAttempts:    5,
		LockoutMinutes:      120,
		ResetTokenExpiryMin: 60,
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	authService := service.NewAuthService(mockRepo, mockTokenService, nil, testConfig())
	adminService := service.NewAdminService(mockRepo, testConfig())
	authHandler := handler.NewAuthHandler(authService, adminService, mockTokenService)

	app := fiber.New()
	app.Post("/login", authHandler.Login)

	admin := &domain.Admin{
		ID:           "admin-123",
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "correct-password"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		mockRepo.EXPECT().RecordLoginSuccess(gomock.Any(), admin.ID, gomock.Any()).Return(nil)
		mockTokenService.EXPECT().Generate(admin.ID, admin.Email, admin.Role).
			Return("signed-token", time.Now().Add(time.Hour), nil)

		body, _ := json.Marshal(dto.LoginInput{Email: admin.Email, Password: "correct-password"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.LoginOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, admin.Email, out.Admin.Email)
	})

	t.Run("bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", bytes.NewReader([]byte("")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("short password rejected before the service", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginInput{Email: admin.Email, Password: "abc"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		mockRepo.EXPECT().RecordLoginFailure(gomock.Any(), admin.ID, 5, 120*time.Minute).Return(1, nil, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: admin.Email, Password: "wrong-password"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("locked account returns 423", func(t *testing.T) {
		lockUntil := time.Now().Add(time.Hour)
		locked := &domain.Admin{
			ID:           admin.ID,
			Email:        admin.Email,
			PasswordHash: admin.PasswordHash,
			Role:         admin.Role,
			IsActive:     true,
			LockUntil:    &lockUntil,
		}
		mockRepo.EXPECT().GetByEmail(gomock.Any(), admin.Email).Return(locked, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: admin.Email, Password: "correct-password"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusLocked, resp.StatusCode)
	})

	t.Run("inactive account returns 401", func(t *testing.T) {
		inactive := &domain.Admin{
			ID:           admin.ID,
			Email:        admin.Email,
			PasswordHash: admin.PasswordHash,
			Role:         admin.Role,
			IsActive:     false,
		}
		mockRepo.EXPECT().GetByEmail(gomock.Any(), admin.Email).Return(inactive, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: admin.Email, Password: "correct-password"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	mockSender := mocks.NewMockSender(ctrl)

	authService := service.NewAuthService(mockRepo, nil, mockSender, testConfig())
	authHandler := handler.NewAuthHandler(authService, nil, nil)

	app := fiber.New()
	app.Post("/forgot-password", authHandler.ForgotPassword)

	admin := &domain.Admin{ID: "admin-123", Email: "admin@example.com"}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		mockRepo.EXPECT().SetResetToken(gomock.Any(), admin.ID, gomock.Any(), gomock.Any()).Return(nil)
		mockSender.EXPECT().SendPasswordReset(gomock.Any(), admin.Email, gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: admin.Email})
		req := httptest.NewRequest("POST", "/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: "nobody@example.com"})
		req := httptest.NewRequest("POST", "/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("delivery failure returns 500", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		mockRepo.EXPECT().SetResetToken(gomock.Any(), admin.ID, gomock.Any(), gomock.Any()).Return(nil)
		mockSender.EXPECT().SendPasswordReset(gomock.Any(), admin.Email, gomock.Any()).
			Return(errors.New("smtp unreachable"))
		mockRepo.EXPECT().ClearResetToken(gomock.Any(), admin.ID).Return(nil)

		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: admin.Email})
		req := httptest.NewRequest("POST", "/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)

	authService := service.NewAuthService(mockRepo, nil, nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, nil, nil)

	app := fiber.New()
	app.Put("/reset-password/:token", authHandler.ResetPassword)

	t.Run("success", func(t *testing.T) {
		admin := &domain.Admin{ID: "admin-123", Email: "admin@example.com"}
		mockRepo.EXPECT().GetByResetToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(admin, nil)
		mockRepo.EXPECT().UpdatePassword(gomock.Any(), admin.ID, gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.ResetPasswordInput{Password: "new-password"})
		req := httptest.NewRequest("PUT", "/reset-password/sometoken", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid token returns 400", func(t *testing.T) {
		mockRepo.EXPECT().GetByResetToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		body, _ := json.Marshal(dto.ResetPasswordInput{Password: "new-password"})
		req := httptest.NewRequest("PUT", "/reset-password/sometoken", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("short password rejected", func(t *testing.T) {
		body, _ := json.Marshal(dto.ResetPasswordInput{Password: "abc"})
		req := httptest.NewRequest("PUT", "/reset-password/sometoken", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
