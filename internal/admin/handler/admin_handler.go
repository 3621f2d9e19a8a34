package handler

import (
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	"github.com/Sonai2004/My-Portfolio/internal/admin/dto"
	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) GetAllAdmins(c *fiber.Ctx) error {
	admins, err := h.adminService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(admins)
}

func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var input dto.CreateAdminInput
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
	if input.Role != "" && input.Role != domain.RoleAdmin && input.Role != domain.RoleSuperAdmin {
		fields["role"] = "role must be admin or super-admin"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	admin, err := h.adminService.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(admin)
}

func (h *AuthHandler) UpdateAdminStatus(c *fiber.Ctx) error {
	var input dto.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.adminService.SetStatus(c.Context(), c.Params("id"), input.IsActive); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "admin status updated",
	})
}

func (h *AuthHandler) DeleteAdmin(c *fiber.Ctx) error {
	requesterID, _ := c.Locals(localAdminID).(string)
	if err := h.adminService.Delete(c.Context(), c.Params("id"), requesterID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "admin deleted",
	})
}
