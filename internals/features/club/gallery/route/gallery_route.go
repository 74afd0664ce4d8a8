// internals/features/club/gallery/route/gallery_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryController "brezalfc_backend/internals/features/club/gallery/controller"
)

func GalleryUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := galleryController.NewGalleryController(db)
	user.Get("/photos", ctrl.List)
}

func GalleryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := galleryController.NewGalleryController(db)
	admin.Post("/photos", ctrl.Upload)
	admin.Delete("/photos/:id", ctrl.Delete)
}
