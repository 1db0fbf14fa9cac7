// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/constants"
)

// OnlyRolesCanAccess: generic role guard (dipakai lewat wrapper di bawah)
func OnlyRolesCanAccess(feature string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// OnlyAdmin: khusus fitur manajemen (CRUD master data)
func OnlyAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// OnlyTeacherOrAdmin: fitur harian guru
func OnlyTeacherOrAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleTeacher && role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
		}
		return c.Next()
	}
}

// OnlyInternalOrAdmin: endpoint operasional.
// Service internal boleh lewat dengan X-Internal-Api-Key (tanpa JWT),
// selain itu wajib JWT dengan role admin/internal.
func OnlyInternalOrAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key := c.Get("X-Internal-Api-Key"); key != "" &&
			configs.InternalAPIKey != "" && key == configs.InternalAPIKey {
			return c.Next()
		}

		role, _ := c.Locals("role").(string)
		if role != constants.RoleAdmin && role != constants.RoleInternal {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorInternal(feature))
		}
		return c.Next()
	}
}
