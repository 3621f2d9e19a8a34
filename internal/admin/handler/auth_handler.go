package handler

import (
	"errors"

	"github.com/Sonai2004/My-Portfolio/internal/admin/dto"
	"github.com/Sonai2004/My-Portfolio/internal/admin/service"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const minPasswordLength = 6

type AuthHandler struct {
	authService  *service.AuthService
	adminService *service.AdminService
	tokenService service.TokenGenerator
}

func NewAuthHandler(authService *service.AuthService, adminService *service.AdminService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
		tokenService: tokenService,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	fields := fiber.Map{}
	if input.Email == "" {
		fields["email"] = "email is required"
	}
	if len(input.Password) < minPasswordLength {
		fields["password"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	output, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(output)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Email == "" {
		return validationFailed(c, fiber.Map{"email": "email is required"})
	}

	if err := h.authService.RequestReset(c.Context(), input.Email); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "password reset email sent",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if len(input.Password) < minPasswordLength {
		return validationFailed(c, fiber.Map{"password": "password must be at least 6 characters"})
	}

	if err := h.authService.CompleteReset(c.Context(), c.Params("token"), input.Password); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "password updated",
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	fields := fiber.Map{}
	if input.CurrentPassword == "" {
		fields["current_password"] = "current password is required"
	}
	if len(input.NewPassword) < minPasswordLength {
		fields["new_password"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	adminID, _ := c.Locals(localAdminID).(string)
	if err := h.authService.ChangePassword(c.Context(), adminID, input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "password updated",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	adminID, _ := c.Locals(localAdminID).(string)
	profile, err := h.adminService.Profile(c.Context(), adminID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func validationFailed(c *fiber.Ctx, fields fiber.Map) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

// respondError maps service errors to HTTP responses without exposing
// internal detail.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrAccountInactive):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrAccountLocked):
		status = fiber.StatusLocked
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrTokenInvalidOrExpired),
		errors.Is(err, apperrors.ErrCurrentPasswordIncorrect),
		errors.Is(err, apperrors.ErrEmailAlreadyInUse),
		errors.Is(err, apperrors.ErrSelfDeletion):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrEmailDelivery):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": apperrors.ErrEmailDelivery.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
