// internals/features/club/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "brezalfc_backend/internals/features/club/attendance/controller"
)

// AttendanceUserRoutes cuelga de /sessions: la asistencia siempre es
// relativa a una sesión. No hay rutas de admin: nadie marca por otro.
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	sessions := user.Group("/sessions")
	sessions.Get("/:id/attendance", ctrl.ListForSession)
	sessions.Get("/:id/attendance/me", ctrl.GetMine)
	sessions.Put("/:id/attendance", ctrl.SetMine)
}
