// internals/features/users/auth/service/token_service.go
package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "brezalfc_backend/internals/features/users/auth/repository"
	helpers "brezalfc_backend/internals/helpers"
)

// RefreshToken rota el refresh: valida el JWT de la cookie, comprueba que
// su hash sigue vivo en DB, lo revoca y emite un par nuevo.
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "No hay refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token no válido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token no válido")
	}

	// El hash tiene que existir y seguir activo
	row, err := authRepo.FindActiveRefreshTokenByHash(db, computeRefreshHash(refreshCookie, refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconocido o revocado")
	}
	if row.UserID != userID {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token no válido")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	// ROTATE: el token viejo muere aquí, pase lo que pase después
	if err := authRepo.RevokeRefreshTokenByID(db, row.ID); err != nil {
		log.Printf("[WARN] revocar refresh viejo falló: %v", err)
	}

	return issueTokens(c, db, user)
}

// RevokeSessions revoca todos los refresh vivos del usuario autenticado.
// POST /api/auth/revoke-sessions
func RevokeSessions(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := authRepo.RevokeAllRefreshTokensForUser(db, userID); err != nil {
		return helpers.JsonDomainError(c, err)
	}
	clearAuthCookies(c)
	return helpers.JsonOK(c, "Sesiones revocadas", nil)
}
