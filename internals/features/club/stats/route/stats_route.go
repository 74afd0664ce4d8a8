// internals/features/club/stats/route/stats_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "brezalfc_backend/internals/features/club/stats/controller"
)

func StatsUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatsController(db)
	user.Get("/stats", ctrl.TeamStats)
}
