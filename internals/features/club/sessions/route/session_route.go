// internals/features/club/sessions/route/session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "brezalfc_backend/internals/features/club/sessions/controller"
)

func SessionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	sessions := user.Group("/sessions")
	sessions.Get("/", ctrl.List)
	sessions.Get("/calendar", ctrl.CalendarDays)
	sessions.Get("/:id", ctrl.GetByID)
}

func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	sessions := admin.Group("/sessions")
	sessions.Post("/", ctrl.Create)
	sessions.Patch("/:id", ctrl.Update)
	sessions.Put("/:id/result", ctrl.SaveResult)
	sessions.Delete("/:id", ctrl.Delete)
}
