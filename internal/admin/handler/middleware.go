package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	localAdminID   = "admin_id"
	localAdminRole = "admin_role"
)

// RequireRole authenticates the bearer token and allows the request iff
// the token's role is in the required set.
func (h *AuthHandler) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := h.tokenService.Verify(strings.TrimPrefix(auth, prefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		allowed := false
		for _, role := range roles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient role",
			})
		}

		c.Locals(localAdminID, claims.AdminID)
		c.Locals(localAdminRole, claims.Role)
		return c.Next()
	}
}
