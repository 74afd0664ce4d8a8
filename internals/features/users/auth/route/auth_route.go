// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "brezalfc_backend/internals/features/users/auth/controller"
	"brezalfc_backend/internals/middlewares"
	authMiddleware "brezalfc_backend/internals/middlewares/auth"
)

// AuthRoutes monta /auth bajo el grupo /api: endpoints públicos con rate
// limit agresivo y endpoints de sesión detrás del middleware JWT.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	auth.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/forgot-password", middlewares.LoginRateLimiter(), ctrl.ForgotPassword)

	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
	protected.Post("/revoke-sessions", ctrl.RevokeSessions)
	protected.Get("/me", ctrl.Me)
}
