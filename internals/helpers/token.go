package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetUsuarioIDFromToken toma el user_id que dejó el middleware de auth en Locals.
// 401 si no hay sesión, 400 si el formato no es válido.
func GetUsuarioIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}

	switch t := v.(type) {
	case uint:
		if t == 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return t, nil
	case int:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return uint(t), nil
	case float64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return uint(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id == 0 {
			return 0, fiber.NewError(fiber.StatusBadRequest, "El user_id del token no es válido")
		}
		return uint(id), nil
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "El user_id del token no es válido")
	}
}

// GetRolFromToken devuelve el rol que el middleware dejó en Locals ("rol").
func GetRolFromToken(c *fiber.Ctx) string {
	if v := c.Locals("rol"); v != nil {
		if s, ok := v.(string); ok {
			return strings.ToUpper(strings.TrimSpace(s))
		}
	}
	return ""
}
