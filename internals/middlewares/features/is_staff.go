// internals/middlewares/features/is_staff.go
package features

import (
	"github.com/gofiber/fiber/v2"

	"brezalfc_backend/internals/constants"
)

// IsStaff gates a route group to admin/coach. It relies on the role claim
// stored in Locals by the auth middleware; the services behind it still
// re-check their own invariants at the write path.
func IsStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !constants.IsStaff(role) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff(c.Path()))
		}
		return c.Next()
	}
}

// IsAdmin gates a route to admin only (role management).
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}
		return c.Next()
	}
}
