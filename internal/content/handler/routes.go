package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the public read endpoints and, behind
// requireAdmin, the write endpoints.
func RegisterRoutes(app *fiber.App, h *ContentHandler, requireAdmin fiber.Handler) {
	api := app.Group("/api/v1")
	api.Get("/projects", h.ListProjects)
	api.Get("/projects/:id", h.GetProject)
	api.Get("/skills", h.ListSkills)
	api.Get("/achievements", h.ListAchievements)

	admin := app.Group("/api/v1/admin", requireAdmin)
	admin.Post("/projects", h.CreateProject)
	admin.Put("/projects/:id", h.UpdateProject)
	admin.Delete("/projects/:id", h.DeleteProject)
	admin.Post("/projects/:id/image", h.UploadProjectImage)

	admin.Post("/skills", h.CreateSkill)
	admin.Put("/skills/:id", h.UpdateSkill)
	admin.Delete("/skills/:id", h.DeleteSkill)

	admin.Post("/achievements", h.CreateAchievement)
	admin.Put("/achievements/:id", h.UpdateAchievement)
	admin.Delete("/achievements/:id", h.DeleteAchievement)
}
