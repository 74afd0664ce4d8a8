package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"brezalfc_backend/internals/constants"
	authRepo "brezalfc_backend/internals/features/users/auth/repository"
	helpers "brezalfc_backend/internals/helpers"
)

// ChangeUserRole cambia el rol de otro usuario. Sólo admin (la ruta ya lo
// exige); además un admin no puede degradarse a sí mismo.
// PATCH /api/a/users/:id/role
func ChangeUserRole(db *gorm.DB, c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de usuario no válido")
	}

	var input struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if !constants.IsValidRole(input.Role) {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Rol no válido (admin, coach o player)")
	}

	selfID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if selfID == targetID && input.Role != constants.RoleAdmin {
		return helpers.JsonError(c, fiber.StatusConflict, "No puedes quitarte el rol de admin a ti mismo")
	}

	if err := authRepo.UpdateUserRole(db, targetID, input.Role); err != nil {
		return helpers.JsonDomainError(c, err)
	}

	// reload para devolver el estado autoritativo
	user, err := authRepo.FindUserByID(db, targetID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonUpdated(c, "Rol actualizado", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
		"role":    user.UserRole,
	})
}
