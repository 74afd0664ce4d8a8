package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"brezalfc_backend/internals/constants"
	authModel "brezalfc_backend/internals/features/users/auth/model"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(prefix) && strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):]), nil
	}
	return "", fmt.Errorf("missing or malformed Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("missing exp claim")
	}
	expiry := time.Unix(int64(exp), 0)
	if time.Now().After(expiry.Add(leeway)) {
		return fmt.Errorf("token expired at %s", expiry)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		// legacy claim name
		sub, _ = claims["user_id"].(string)
	}
	return uuid.Parse(sub)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var active bool
	err := db.Model(&authModel.UserModel{}).
		Select("user_is_active").
		Where("user_id = ?", userID).
		Take(&active).Error
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("user inactive")
	}
	return nil
}

func storeRoleClaimToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	role, _ := claims["role"].(string)
	if !constants.IsValidRole(role) {
		role = constants.RolePlayer
	}
	c.Locals("user_role", role)

	if name, _ := claims["user_name"].(string); name != "" {
		c.Locals("user_name", name)
	}
}
