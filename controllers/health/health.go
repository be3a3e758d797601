package healthController

import (
	"context"
	"time"

	"reachout/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health always answers 200; a failing database is reported in the payload.
func (ctrl *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := database.Ping(ctx, ctrl.DB); err != nil {
		dbStatus = "unavailable"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
		"database":  dbStatus,
	})
}
