package auth

import (
	"github.com/gofiber/fiber/v2"

	"gedungku_backend/internals/constants"
)

// RequireAdmin dipasang SETELAH AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin")
		}
		return c.Next()
	}
}
