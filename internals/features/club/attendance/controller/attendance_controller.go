// internals/features/club/attendance/controller/attendance_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceService "brezalfc_backend/internals/features/club/attendance/service"
	playerService "brezalfc_backend/internals/features/club/players/service"
	helpers "brezalfc_backend/internals/helpers"
)

type AttendanceController struct {
	Service *attendanceService.AttendanceService
	Players *playerService.PlayerService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		Service: attendanceService.NewAttendanceService(db),
		Players: playerService.NewPlayerService(db),
	}
}

// PUT /api/u/sessions/:id/attendance: el jugador marca SU asistencia
func (ac *AttendanceController) SetMine(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}

	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	player, err := ac.Players.GetByUserID(userID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}

	row, err := ac.Service.SetStatus(c.UserContext(), sessionID, player.PlayerID, helpers.GetRoleFromToken(c), input.Status)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonUpdated(c, "Asistencia guardada", row)
}

// GET /api/u/sessions/:id/attendance/me
func (ac *AttendanceController) GetMine(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	player, err := ac.Players.GetByUserID(userID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}

	status, err := ac.Service.StatusOf(c.UserContext(), sessionID, player.PlayerID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonOK(c, "", fiber.Map{
		"session_id": sessionID,
		"player_id":  player.PlayerID,
		"status":     status,
	})
}

// GET /api/u/sessions/:id/attendance: convocatoria con respuestas
func (ac *AttendanceController) ListForSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}
	entries, err := ac.Service.ListForSession(c.UserContext(), sessionID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Asistencia de la sesión", entries, nil)
}
