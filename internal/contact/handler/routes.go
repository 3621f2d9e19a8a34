package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the public submission endpoint (rate limited)
// and the authenticated inbox endpoints.
func RegisterRoutes(app *fiber.App, h *ContactHandler, rateLimit fiber.Handler, requireAdmin fiber.Handler) {
	app.Post("/api/v1/contact", rateLimit, h.Submit)

	admin := app.Group("/api/v1/admin/messages", requireAdmin)
	admin.Get("/", h.List)
	admin.Put("/:id/read", h.MarkRead)
	admin.Delete("/:id", h.Delete)
}
