package server

import (
	"reachout/config"
	authController "reachout/controllers/auth"
	certificateController "reachout/controllers/certificate"
	courseController "reachout/controllers/course"
	dashboardController "reachout/controllers/dashboard"
	healthController "reachout/controllers/health"
	"reachout/middleware"
	"reachout/repository"
	"reachout/routers/authRoutes"
	"reachout/routers/certificateRoutes"
	"reachout/routers/courseRoutes"
	"reachout/routers/dashboardRoutes"
	analyticsService "reachout/services/analytics"
	authService "reachout/services/auth"
	certificateService "reachout/services/certificate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

type Options struct {
	// AccessLog enables the fiber request logger
	AccessLog bool
}

// New wires repositories, services and routes into a fiber app.
func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "reachout",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Authorization," + middleware.HeaderRequestID,
	}))
	app.Use(compress.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestId}\n",
		}))
	}

	admins := repository.NewAdminRepository(db)
	courses := repository.NewCourseRepository(db)
	certs := repository.NewCertificateRepository(db)

	tokens := middleware.NewTokenManager(cfg.JWTKey, cfg.TokenTTL)
	requireAdmin := middleware.JWTMiddleware(tokens)

	auth := authService.NewService(admins, tokens, cfg.SaltRound)
	certificates := certificateService.NewService(certs)
	analytics := analyticsService.NewService(courses, certs)

	app.Get("/health", healthController.NewHealthController(db).Health)

	api := app.Group("/api")
	authRoutes.SetupAuthRoutes(api, authController.NewAuthController(auth), requireAdmin)
	courseRoutes.SetupCourseRoutes(api, courseController.NewCourseController(courses), requireAdmin)
	certificateRoutes.SetupCertificateRoutes(api, certificateController.NewCertificateController(certificates), requireAdmin)
	dashboardRoutes.SetupDashboardRoutes(api, dashboardController.NewDashboardController(analytics), requireAdmin)

	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Route not found", nil)
	})

	return app
}
