package dashboardController

import (
	"reachout/middleware"
	analyticsService "reachout/services/analytics"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Analytics *analyticsService.Service
}

func NewDashboardController(analytics *analyticsService.Service) *DashboardController {
	return &DashboardController{Analytics: analytics}
}

// Stats returns the admin dashboard summary.
func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	stats, err := ctrl.Analytics.Stats(c.UserContext())
	if err != nil {
		return middleware.InternalError(c, "Failed to fetch dashboard stats", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, false, "Dashboard stats fetched successfully", stats)
}
