// internals/features/club/divisions/controller/division_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	divisionService "brezalfc_backend/internals/features/club/divisions/service"
	playerDTO "brezalfc_backend/internals/features/club/players/dto"
	helpers "brezalfc_backend/internals/helpers"
)

type DivisionController struct {
	Ledger *divisionService.LedgerService
}

func NewDivisionController(db *gorm.DB) *DivisionController {
	return &DivisionController{Ledger: divisionService.NewLedgerService(db)}
}

// GET /api/u/divisions
func (dc *DivisionController) List(c *fiber.Ctx) error {
	divisions, err := dc.Ledger.ListAll(c.UserContext())
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Divisiones", divisions, nil)
}

// GET /api/u/divisions/:id/players
func (dc *DivisionController) ListPlayers(c *fiber.Ctx) error {
	divisionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de división no válido")
	}
	players, err := dc.Ledger.ListByDivision(c.UserContext(), divisionID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Jugadores de la división", playerDTO.ToPlayerResponses(players), nil)
}

// GET /api/u/divisions/player/:playerId
func (dc *DivisionController) ListOfPlayer(c *fiber.Ctx) error {
	playerID, err := uuid.Parse(c.Params("playerId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de jugador no válido")
	}
	divisions, err := dc.Ledger.ListByPlayer(c.UserContext(), playerID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Divisiones del jugador", divisions, nil)
}

// POST /api/a/divisions
func (dc *DivisionController) Create(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return helpers.JsonValidationError(c, map[string][]string{"name": {"obligatorio"}})
	}
	division, err := dc.Ledger.CreateDivision(c.UserContext(), input.Name)
	if err != nil {
		if err == gorm.ErrDuplicatedKey || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Ya existe una división con ese nombre")
		}
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonCreated(c, "División creada", division)
}

// POST /api/a/divisions/:id/players/:playerId
func (dc *DivisionController) Assign(c *fiber.Ctx) error {
	divisionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de división no válido")
	}
	playerID, err := uuid.Parse(c.Params("playerId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de jugador no válido")
	}

	if err := dc.Ledger.Assign(c.UserContext(), playerID, divisionID); err != nil {
		return helpers.JsonDomainError(c, err)
	}

	// reload: la lista resultante es la verdad, no lo que cree el cliente
	divisions, err := dc.Ledger.ListByPlayer(c.UserContext(), playerID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonCreated(c, "Jugador inscrito", fiber.Map{
		"player_id": playerID,
		"divisions": divisions,
	})
}

// DELETE /api/a/divisions/:id/players/:playerId
func (dc *DivisionController) Unassign(c *fiber.Ctx) error {
	divisionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de división no válido")
	}
	playerID, err := uuid.Parse(c.Params("playerId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de jugador no válido")
	}

	removed, err := dc.Ledger.Unassign(c.UserContext(), playerID, divisionID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonDeleted(c, "Inscripción retirada", fiber.Map{
		"player_id":   playerID,
		"division_id": divisionID,
		"removed":     removed,
	})
}
