package authRoutes

import (
	authController "reachout/controllers/auth"
	authValidator "reachout/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, ctrl *authController.AuthController, requireAdmin fiber.Handler) {
	authGroup := api.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Post("/logout", ctrl.Logout)
	authGroup.Get("/me", requireAdmin, ctrl.Me)
	authGroup.Post("/create-admin", authValidator.CreateAdmin(), ctrl.CreateAdmin)
}
