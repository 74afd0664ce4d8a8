// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "brezalfc_backend/internals/features/club/attendance/route"
	divisionRoute "brezalfc_backend/internals/features/club/divisions/route"
	galleryRoute "brezalfc_backend/internals/features/club/gallery/route"
	playerRoute "brezalfc_backend/internals/features/club/players/route"
	sessionRoute "brezalfc_backend/internals/features/club/sessions/route"
	statsRoute "brezalfc_backend/internals/features/club/stats/route"
	authController "brezalfc_backend/internals/features/users/auth/controller"
	authRoute "brezalfc_backend/internals/features/users/auth/route"
	authMiddleware "brezalfc_backend/internals/middlewares/auth"
	featureMiddleware "brezalfc_backend/internals/middlewares/features"
)

// SetupRoutes: tres niveles de acceso.
//
//	/api/auth  público (más sesión propia detrás del JWT)
//	/api/u     cualquier usuario autenticado
//	/api/a     sólo admin/coach; lo de rol y contraseñas, sólo admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	playerRoute.PlayerUserRoutes(user, db)
	divisionRoute.DivisionUserRoutes(user, db)
	sessionRoute.SessionUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	statsRoute.StatsUserRoutes(user, db)
	galleryRoute.GalleryUserRoutes(user, db)

	admin := api.Group("/a", authMiddleware.AuthMiddleware(db), featureMiddleware.IsStaff())
	playerRoute.PlayerAdminRoutes(admin, db)
	divisionRoute.DivisionAdminRoutes(admin, db)
	sessionRoute.SessionAdminRoutes(admin, db)
	galleryRoute.GalleryAdminRoutes(admin, db)

	// gestión de cuentas: nivel admin, no coach
	authCtrl := authController.NewAuthController(db)
	admin.Patch("/users/:id/role", featureMiddleware.IsAdmin(), authCtrl.ChangeUserRole)
	admin.Post("/users/reset-password", featureMiddleware.IsAdmin(), authCtrl.ResetPassword)
}
