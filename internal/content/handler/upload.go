package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// UploadProjectImage stores a multipart image under the uploads dir with
// a generated filename and records its public URL on the project.
func (h *ContentHandler) UploadProjectImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return validationFailed(c, fiber.Map{"image": "image file is required"})
	}

	if file.Size > h.maxUploadBytes {
		return validationFailed(c, fiber.Map{"image": fmt.Sprintf("file exceeds %d MB limit", h.maxUploadBytes>>20)})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return validationFailed(c, fiber.Map{"image": "file type must be png, jpg, jpeg, webp or gif"})
	}

	// Generated name; the client-supplied filename never touches the disk.
	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store file",
		})
	}

	imageURL := "/uploads/" + name
	if err := h.contentService.SetProjectImage(c.Context(), c.Params("id"), imageURL); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"image_url": imageURL,
	})
}
