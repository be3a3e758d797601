package courseController

import (
	"errors"

	"reachout/middleware"
	"reachout/models"
	"reachout/repository"
	"reachout/validators"
	courseValidator "reachout/validators/course"

	"github.com/gofiber/fiber/v2"
)

type CourseController struct {
	Courses repository.CourseStore
}

func NewCourseController(courses repository.CourseStore) *CourseController {
	return &CourseController{Courses: courses}
}

// GetAllCourses lists every course, newest first.
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.List(c.UserContext())
	if err != nil {
		return middleware.InternalError(c, "Failed to fetch courses", err)
	}
	return middleware.ListResponse(c, courses, len(courses))
}

func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	course, err := ctrl.Courses.FindByID(c.UserContext(), validators.IDFrom(c))
	if errors.Is(err, repository.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Course not found", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Failed to fetch course", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, false, "", course)
}

func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.LocalCreateCourse).(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request data", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Duration:    reqData.Duration,
		Fees:        *reqData.Fees,
		ImageURL:    optional(reqData.ImageURL),
	}

	if err := ctrl.Courses.Create(c.UserContext(), &course); err != nil {
		return middleware.InternalError(c, "Failed to create course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, false, "Course created successfully", course)
}

// UpdateCourse changes only the fields present in the request.
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.LocalUpdateCourse).(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request data", nil)
	}

	course, err := ctrl.Courses.FindByID(c.UserContext(), validators.IDFrom(c))
	if errors.Is(err, repository.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Course not found", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Failed to update course", err)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Fees != nil {
		course.Fees = *reqData.Fees
	}
	if reqData.ImageURL != nil {
		course.ImageURL = optional(*reqData.ImageURL)
	}

	if err := ctrl.Courses.Update(c.UserContext(), course); err != nil {
		return middleware.InternalError(c, "Failed to update course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, false, "Course updated successfully", course)
}

func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	err := ctrl.Courses.Delete(c.UserContext(), validators.IDFrom(c))
	if errors.Is(err, repository.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Course not found", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Failed to delete course", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, false, "Course deleted successfully", nil)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
