// internals/features/club/divisions/route/division_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	divisionController "brezalfc_backend/internals/features/club/divisions/controller"
)

func DivisionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := divisionController.NewDivisionController(db)

	divisions := user.Group("/divisions")
	divisions.Get("/", ctrl.List)
	divisions.Get("/player/:playerId", ctrl.ListOfPlayer)
	divisions.Get("/:id/players", ctrl.ListPlayers)
}

func DivisionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := divisionController.NewDivisionController(db)

	divisions := admin.Group("/divisions")
	divisions.Post("/", ctrl.Create)
	divisions.Post("/:id/players/:playerId", ctrl.Assign)
	divisions.Delete("/:id/players/:playerId", ctrl.Unassign)
}
