package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"brezalfc_backend/internals/configs"
	"brezalfc_backend/internals/constants"
	authDTO "brezalfc_backend/internals/features/users/auth/dto"
	authModel "brezalfc_backend/internals/features/users/auth/model"
	authRepo "brezalfc_backend/internals/features/users/auth/repository"
	playerModel "brezalfc_backend/internals/features/club/players/model"
	helpers "brezalfc_backend/internals/helpers"
)

/* ==========================
   Const & helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET no configurado")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET no configurado")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// computeRefreshHash: HMAC-SHA256 del refresh; en DB sólo vive el hash.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func hashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func checkPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ==========================
   REGISTER
========================== */

// Register crea el usuario (rol player) y su ficha en la misma transacción.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	input.Normalize()
	if fieldErrs := authDTO.ValidateStruct(&input); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo cifrar la contraseña")
	}

	user := authModel.UserModel{
		UserEmail:    input.Email,
		UserPassword: passwordHash,
		UserRole:     constants.RolePlayer,
		UserIsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		return tx.Create(&playerModel.PlayerModel{
			PlayerUserID:    user.UserID,
			PlayerFirstName: input.FirstName,
			PlayerLastName:  input.LastName,
		}).Error
	})
	if err != nil {
		if err == gorm.ErrDuplicatedKey || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Ese email ya está registrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helpers.JsonCreated(c, "Registro completado", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	input.Normalize()
	if fieldErrs := authDTO.ValidateStruct(&input); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email o contraseña incorrectos")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Tu cuenta está desactivada. Habla con el club.")
	}
	if err := checkPasswordHash(user.UserPassword, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email o contraseña incorrectos")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   ISSUE TOKENS + cookies
========================== */

func buildAccessClaims(user *authModel.UserModel, name string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"role":      user.UserRole,
		"user_name": name,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(user *authModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user *authModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	// El nombre visible sale de la ficha; si no hay, fallback al id corto
	var player playerModel.PlayerModel
	displayName := ""
	if err := db.Where("player_user_id = ?", user.UserID).First(&player).Error; err == nil {
		displayName = player.DisplayName()
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, displayName, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el refresh token")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.UserID,
		Token:     computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, "Sesión iniciada", fiber.Map{
		"user": fiber.Map{
			"user_id": user.UserID,
			"email":   user.UserEmail,
			"role":    user.UserRole,
			"name":    displayName,
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helpers.GetRawAccessToken(c)

	// Blacklist del access (idempotente)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] blacklist en logout falló: %v", err)
		}
	}

	// Revocar el refresh de la cookie si lo hay
	if rt := helpers.GetRefreshTokenFromCookie(c); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			if row, err := authRepo.FindActiveRefreshTokenByHash(db, computeRefreshHash(rt, secret)); err == nil {
				_ = authRepo.RevokeRefreshTokenByID(db, row.ID)
			}
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Sesión cerrada", nil)
}

// resolveBlacklistTTL: lo que le quede de vida al access + margen, con
// override por env para entornos de prueba.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	secret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
					return until + time.Minute
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}

	var player playerModel.PlayerModel
	hasPlayer := db.Where("player_user_id = ?", userID).First(&player).Error == nil

	resp := fiber.Map{
		"user_id":   user.UserID,
		"email":     user.UserEmail,
		"role":      user.UserRole,
		"is_active": user.UserIsActive,
	}
	if hasPlayer {
		resp["player"] = player
		resp["name"] = player.DisplayName()
	}
	return helpers.JsonOK(c, "", resp)
}
