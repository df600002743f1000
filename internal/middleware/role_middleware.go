package middleware

import (
	"hrm-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Role gates a route to the given roles. It assumes Auth ran first.
func Role(allowedRoles ...model.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied: role missing"})
		}

		for _, role := range allowedRoles {
			if string(role) == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied: insufficient role"})
	}
}
