// file: internals/helpers/auth/get_school_id_from_token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetSchoolIDFromToken mengambil school_id (tenant) yang sudah dipasang
// AuthMiddleware di Locals. Semua query wajib difilter dengan ID ini.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("school_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School ID pada token tidak valid")
	}
	return id, nil
}

// GetUserIDFromToken mengambil user_id dari Locals (dipasang AuthMiddleware).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID pada token tidak valid")
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari Locals ("" kalau tidak ada).
func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("role").(string); ok {
		return role
	}
	return ""
}
