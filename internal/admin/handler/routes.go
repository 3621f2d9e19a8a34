package handler

import (
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Put("/reset-password/:token", h.ResetPassword)

	admin := app.Group("/api/v1/admin", h.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin))
	admin.Get("/me", h.Me)
	admin.Put("/change-password", h.ChangePassword)

	// Account management is super-admin only.
	super := admin.Group("/admins", h.RequireRole(domain.RoleSuperAdmin))
	super.Get("/", h.GetAllAdmins)
	super.Post("/", h.CreateAdmin)
	super.Put("/:id/status", h.UpdateAdminStatus)
	super.Delete("/:id", h.DeleteAdmin)
}
