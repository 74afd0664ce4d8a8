// internals/features/club/gallery/controller/gallery_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	photoModel "brezalfc_backend/internals/features/club/gallery/model"
	galleryService "brezalfc_backend/internals/features/club/gallery/service"
	helpers "brezalfc_backend/internals/helpers"
	ossHelper "brezalfc_backend/internals/helpers/oss"
)

type GalleryController struct {
	Service *galleryService.GalleryService
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{Service: galleryService.NewGalleryService(db)}
}

// GET /api/u/photos
func (gc *GalleryController) List(c *fiber.Ctx) error {
	groups, err := gc.Service.ListGrouped(c.UserContext())
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonList(c, "Galería", groups, nil)
}

// POST /api/a/photos: multipart "photo" + campos title/year opcionales
func (gc *GalleryController) Upload(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Falta el fichero 'photo'")
	}

	client, err := ossHelper.Default()
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	url, err := client.UploadImageWebP(fh, "gallery")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	photo := photoModel.PhotoModel{
		PhotoURL:        url,
		PhotoUploadedBy: userID,
	}
	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		photo.PhotoTitle = &title
	}
	if yearStr := c.FormValue("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1900 || year > 2200 {
			return helpers.JsonValidationError(c, map[string][]string{"year": {"no válido"}})
		}
		photo.PhotoYear = &year
	}

	saved, err := gc.Service.Create(c.UserContext(), &photo)
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonCreated(c, "Foto subida", saved)
}

// DELETE /api/a/photos/:id
func (gc *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de foto no válido")
	}
	if err := gc.Service.Delete(c.UserContext(), id); err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonDeleted(c, "Foto eliminada", fiber.Map{"photo_id": id})
}
