package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RoleMiddleware valida que el rol del token esté en la lista permitida.
// El mensaje de error viene del caller (ver constants/roles.go).
func RoleMiddleware(allowedRoles []string, forbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, ok := c.Locals("rol").(string)
		if !ok || rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		for _, allowed := range allowedRoles {
			if rol == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": forbiddenMessage,
		})
	}
}
