// internals/features/club/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionDTO "brezalfc_backend/internals/features/club/sessions/dto"
	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
	sessionService "brezalfc_backend/internals/features/club/sessions/service"
	helpers "brezalfc_backend/internals/helpers"
)

type SessionController struct {
	Service *sessionService.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{Service: sessionService.NewSessionService(db)}
}

// GET /api/u/sessions?type=training&year=2026&month=8
func (sc *SessionController) List(c *fiber.Ctx) error {
	filter := sessionService.ListFilter{}

	switch t := c.Query("type"); t {
	case "", sessionModel.SessionTypeTraining, sessionModel.SessionTypeMatch:
		filter.Type = t
	default:
		return helpers.JsonError(c, fiber.StatusBadRequest, "type debe ser training o match")
	}

	if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		month, merr := strconv.Atoi(c.Query("month"))
		if err != nil || merr != nil || month < 1 || month > 12 {
			return helpers.JsonError(c, fiber.StatusBadRequest, "year/month no válidos")
		}
		filter.Year = year
		filter.Month = time.Month(month)
	}

	sessions, err := sc.Service.List(c.UserContext(), filter)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Sesiones", sessions, nil)
}

// GET /api/u/sessions/calendar?year=2026&month=8
func (sc *SessionController) CalendarDays(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year"))
	month, merr := strconv.Atoi(c.Query("month"))
	if err != nil || merr != nil || month < 1 || month > 12 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "year/month no válidos")
	}
	days, err := sc.Service.CalendarDays(c.UserContext(), year, time.Month(month))
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonOK(c, "", fiber.Map{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

// GET /api/u/sessions/:id
func (sc *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}
	session, err := sc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonOK(c, "", session)
}

// POST /api/a/sessions
func (sc *SessionController) Create(c *fiber.Ctx) error {
	var input sessionDTO.CreateSessionRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := input.Validate(); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}
	m := input.ToModel()
	created, err := sc.Service.Create(c.UserContext(), &m)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonCreated(c, "Sesión creada", created)
}

// PATCH /api/a/sessions/:id
func (sc *SessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}
	session, err := sc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}

	var input sessionDTO.UpdateSessionRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := input.Validate(); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}
	input.Apply(session)

	saved, err := sc.Service.Save(c.UserContext(), session)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonUpdated(c, "Sesión actualizada", saved)
}

// PUT /api/a/sessions/:id/result
func (sc *SessionController) SaveResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}
	var input sessionDTO.MatchResultRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := input.Validate(); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}

	saved, err := sc.Service.SaveResult(c.UserContext(), id, input.HomeGoals, input.AwayGoals)
	if err != nil {
		if errors.Is(err, sessionService.ErrNotAMatch) {
			return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonUpdated(c, "Resultado guardado", saved)
}

// DELETE /api/a/sessions/:id
func (sc *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de sesión no válido")
	}
	if err := sc.Service.Delete(c.UserContext(), id); err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonDeleted(c, "Sesión eliminada", fiber.Map{"session_id": id})
}
