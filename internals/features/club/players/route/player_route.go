// internals/features/club/players/route/player_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	playerController "brezalfc_backend/internals/features/club/players/controller"
)

// PlayerUserRoutes: lecturas y edición de la propia ficha (cualquier rol).
func PlayerUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := playerController.NewPlayerController(db)

	players := user.Group("/players")
	players.Get("/", ctrl.List)
	players.Get("/me", ctrl.GetMe)
	players.Patch("/me", ctrl.UpdateMe)
	players.Post("/me/photo", ctrl.UploadMyPhoto)
	players.Get("/:id", ctrl.GetByID)
}

// PlayerAdminRoutes: edición de cualquier ficha y bajas (admin/coach).
func PlayerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := playerController.NewPlayerController(db)

	players := admin.Group("/players")
	players.Patch("/:id", ctrl.UpdateByID)
	players.Delete("/:id", ctrl.Deactivate)
}
