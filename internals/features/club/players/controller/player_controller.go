// internals/features/club/players/controller/player_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	playerDTO "brezalfc_backend/internals/features/club/players/dto"
	playerModel "brezalfc_backend/internals/features/club/players/model"
	playerService "brezalfc_backend/internals/features/club/players/service"
	helpers "brezalfc_backend/internals/helpers"
	ossHelper "brezalfc_backend/internals/helpers/oss"
)

type PlayerController struct {
	Service *playerService.PlayerService
}

func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{Service: playerService.NewPlayerService(db)}
}

// GET /api/u/players
func (pc *PlayerController) List(c *fiber.Ctx) error {
	players, err := pc.Service.List()
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Plantilla", playerDTO.ToPlayerResponses(players), nil)
}

// GET /api/u/players/:id
func (pc *PlayerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de jugador no válido")
	}
	p, err := pc.Service.GetByID(id)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	resp := playerDTO.ToPlayerResponse(p)
	return helpers.JsonOK(c, "", resp)
}

// GET /api/u/players/me
func (pc *PlayerController) GetMe(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	p, err := pc.Service.GetByUserID(userID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	resp := playerDTO.ToPlayerResponse(p)
	return helpers.JsonOK(c, "", resp)
}

// PATCH /api/u/players/me: el jugador edita su propia ficha
func (pc *PlayerController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	p, err := pc.Service.GetByUserID(userID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return pc.applyPatch(c, p)
}

// PATCH /api/a/players/:id: el staff edita cualquier ficha
func (pc *PlayerController) UpdateByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de jugador no válido")
	}
	p, err := pc.Service.GetByID(id)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return pc.applyPatch(c, p)
}

func (pc *PlayerController) applyPatch(c *fiber.Ctx, p *playerModel.PlayerModel) error {
	var input playerDTO.FichaUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if fieldErrs := input.Validate(); fieldErrs != nil {
		return helpers.JsonValidationError(c, fieldErrs)
	}
	input.Apply(p)
	saved, err := pc.Service.Save(p)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	resp := playerDTO.ToPlayerResponse(saved)
	return helpers.JsonUpdated(c, "Ficha actualizada", resp)
}

// POST /api/u/players/me/photo: multipart "photo", convertida a WebP en OSS
func (pc *PlayerController) UploadMyPhoto(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	p, err := pc.Service.GetByUserID(userID)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Falta el fichero 'photo'")
	}

	client, err := ossHelper.Default()
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	url, err := client.UploadImageWebP(fh, "players")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	saved, err := pc.Service.SetPhotoURL(p.PlayerID, url)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	resp := playerDTO.ToPlayerResponse(saved)
	return helpers.JsonUpdated(c, "Foto actualizada", resp)
}

// DELETE /api/a/players/:id: baja lógica
func (pc *PlayerController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de jugador no válido")
	}
	if err := pc.Service.Deactivate(id); err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonDeleted(c, "Jugador dado de baja", fiber.Map{"player_id": id})
}
