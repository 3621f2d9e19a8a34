package handler

import (
	"errors"
	"strings"

	"github.com/Sonai2004/My-Portfolio/internal/contact/dto"
	"github.com/Sonai2004/My-Portfolio/internal/contact/service"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var input dto.MessageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	fields := fiber.Map{}
	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if !validEmail(input.Email) {
		fields["email"] = "a valid email is required"
	}
	if input.Message == "" {
		fields["message"] = "message is required"
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fields,
		})
	}

	message, err := h.contactService.Submit(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	messages, err := h.contactService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.contactService.MarkRead(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "marked as read",
	})
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.contactService.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "message deleted",
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

// validEmail is a light sanity check, not RFC validation.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
