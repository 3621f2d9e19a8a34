package handler

import (
	"errors"

	"github.com/Sonai2004/My-Portfolio/internal/content/dto"
	"github.com/Sonai2004/My-Portfolio/internal/content/service"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	contentService *service.ContentService
	uploadDir      string
	maxUploadBytes int64
}

func NewContentHandler(contentService *service.ContentService, uploadDir string, maxUploadMB int) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		uploadDir:      uploadDir,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

func (h *ContentHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.contentService.ListProjects(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(projects)
}

func (h *ContentHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.contentService.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(project)
}

func (h *ContentHandler) CreateProject(c *fiber.Ctx) error {
	var input dto.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Title == "" {
		return validationFailed(c, fiber.Map{"title": "title is required"})
	}

	project, err := h.contentService.CreateProject(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ContentHandler) UpdateProject(c *fiber.Ctx) error {
	var input dto.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Title == "" {
		return validationFailed(c, fiber.Map{"title": "title is required"})
	}

	if err := h.contentService.UpdateProject(c.Context(), c.Params("id"), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "project updated",
	})
}

func (h *ContentHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.contentService.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "project deleted",
	})
}

func (h *ContentHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.contentService.ListSkills(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(skills)
}

func (h *ContentHandler) CreateSkill(c *fiber.Ctx) error {
	var input dto.SkillInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	fields := fiber.Map{}
	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if input.Proficiency < 0 || input.Proficiency > 100 {
		fields["proficiency"] = "proficiency must be between 0 and 100"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	skill, err := h.contentService.CreateSkill(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *ContentHandler) UpdateSkill(c *fiber.Ctx) error {
	var input dto.SkillInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.contentService.UpdateSkill(c.Context(), c.Params("id"), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "skill updated",
	})
}

func (h *ContentHandler) DeleteSkill(c *fiber.Ctx) error {
	if err := h.contentService.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "skill deleted",
	})
}

func (h *ContentHandler) ListAchievements(c *fiber.Ctx) error {
	achievements, err := h.contentService.ListAchievements(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(achievements)
}

func (h *ContentHandler) CreateAchievement(c *fiber.Ctx) error {
	var input dto.AchievementInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Title == "" {
		return validationFailed(c, fiber.Map{"title": "title is required"})
	}

	achievement, err := h.contentService.CreateAchievement(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(achievement)
}

func (h *ContentHandler) UpdateAchievement(c *fiber.Ctx) error {
	var input dto.AchievementInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.contentService.UpdateAchievement(c.Context(), c.Params("id"), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "achievement updated",
	})
}

func (h *ContentHandler) DeleteAchievement(c *fiber.Ctx) error {
	if err := h.contentService.DeleteAchievement(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "achievement deleted",
	})
}

func validationFailed(c *fiber.Ctx, fields fiber.Map) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
