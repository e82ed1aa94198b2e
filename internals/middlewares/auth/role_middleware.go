package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles mengizinkan request kalau claim role termasuk salah satu roles.
// Dipasang setelah SupabaseJWT.
func OnlyRoles(customForbiddenMessage string, roles ...string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}
