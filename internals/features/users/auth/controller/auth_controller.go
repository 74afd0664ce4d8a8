// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "brezalfc_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ac.DB, c)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	return authService.Me(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return authService.ForgotPassword(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return authService.ResetPassword(ac.DB, c)
}

func (ac *AuthController) RevokeSessions(c *fiber.Ctx) error {
	return authService.RevokeSessions(ac.DB, c)
}

func (ac *AuthController) ChangeUserRole(c *fiber.Ctx) error {
	return authService.ChangeUserRole(ac.DB, c)
}
