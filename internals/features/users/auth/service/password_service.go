package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "brezalfc_backend/internals/features/users/auth/dto"
	authRepo "brezalfc_backend/internals/features/users/auth/repository"
	helpers "brezalfc_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := authDTO.ValidateStruct(&input); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}

	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if err := checkPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "La contraseña actual no es correcta")
	}

	newHash, err := hashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo cifrar la contraseña")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}

	// Cambiar contraseña invalida el resto de sesiones
	_ = authRepo.RevokeAllRefreshTokensForUser(db, userID)

	return helpers.JsonUpdated(c, "Contraseña actualizada", nil)
}

// ========================== FORGOT PASSWORD ==========================
// Respuesta genérica siempre: no se revela si el email existe.
func ForgotPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := authDTO.ValidateStruct(&input); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}

	if _, err := authRepo.FindUserByEmail(db, input.Email); err == nil {
		// Sin mailer propio: queda registrado para que el staff lo gestione
		log.Printf("[INFO] solicitud de restablecimiento para %s", input.Email)
	}

	return helpers.JsonOK(c, "Si el email existe, el club se pondrá en contacto contigo", nil)
}

// ========================== RESET PASSWORD (staff) ==========================
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.ResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := authDTO.ValidateStruct(&input); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	newHash, err := hashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo cifrar la contraseña")
	}
	if err := authRepo.UpdateUserPassword(db, user.UserID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}
	_ = authRepo.RevokeAllRefreshTokensForUser(db, user.UserID)

	return helpers.JsonUpdated(c, "Contraseña restablecida", nil)
}
