package dashboardRoutes

import (
	dashboardController "reachout/controllers/dashboard"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(api fiber.Router, ctrl *dashboardController.DashboardController, requireAdmin fiber.Handler) {
	dashboardGroup := api.Group("/dashboard")

	dashboardGroup.Get("/stats", requireAdmin, ctrl.Stats)
}
