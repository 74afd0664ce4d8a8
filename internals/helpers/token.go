// internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"brezalfc_backend/internals/constants"
)

const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Locals("raw_token") set by the auth middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// GetUserIDFromToken reads the user id placed in Locals by the auth
// middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals("user_id").(string)
	if v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return id, nil
}

// GetRoleFromToken reads the role claim placed in Locals by the auth
// middleware; defaults to player.
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	if !constants.IsValidRole(role) {
		return constants.RolePlayer
	}
	return role
}
