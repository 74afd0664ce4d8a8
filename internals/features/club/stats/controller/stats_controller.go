// internals/features/club/stats/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsService "brezalfc_backend/internals/features/club/stats/service"
	helpers "brezalfc_backend/internals/helpers"
)

type StatsController struct {
	Service *statsService.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{Service: statsService.NewStatsService(db)}
}

// GET /api/u/stats: ranking de asistencia y totales del equipo
func (sc *StatsController) TeamStats(c *fiber.Ctx) error {
	stats, totals, err := sc.Service.TeamStats(c.UserContext())
	if err != nil {
		return helpers.JsonDomainError(c, err)
	}
	return helpers.JsonOK(c, "Estadísticas de asistencia", fiber.Map{
		"ranking": stats,
		"totals":  totals,
	})
}
