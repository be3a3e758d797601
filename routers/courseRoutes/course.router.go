package courseRoutes

import (
	courseController "reachout/controllers/course"
	"reachout/validators"
	courseValidator "reachout/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the public catalogue reads and the admin writes.
func SetupCourseRoutes(api fiber.Router, ctrl *courseController.CourseController, requireAdmin fiber.Handler) {
	courseGroup := api.Group("/courses")

	courseGroup.Get("/", ctrl.GetAllCourses)
	courseGroup.Get("/:id", validators.ResourceID("Course"), ctrl.GetCourse)

	// Admin
	courseGroup.Post("/", requireAdmin, courseValidator.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Put("/:id", requireAdmin, validators.ResourceID("Course"), courseValidator.UpdateCourse(), ctrl.UpdateCourse)
	courseGroup.Delete("/:id", requireAdmin, validators.ResourceID("Course"), ctrl.DeleteCourse)
}
