package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"brezalfc_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth middlewares are
// attached per route group in internals/route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
