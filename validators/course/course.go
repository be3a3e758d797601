package courseValidator

import (
	"strings"

	"reachout/middleware"
	"reachout/models"
	"reachout/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	LocalCreateCourse = "validatedCourse"
	LocalUpdateCourse = "validatedCourseUpdate"
)

// CreateCourseRequest accepts fees as a JSON number or a numeric string.
type CreateCourseRequest struct {
	Title       string           `json:"title" validate:"required,max=255"`
	Description string           `json:"description" validate:"required"`
	Duration    string           `json:"duration" validate:"required,max=100"`
	Fees        *decimal.Decimal `json:"fees" validate:"required"`
	ImageURL    string           `json:"image_url" validate:"omitempty,url,max=500"`
}

// UpdateCourseRequest holds only the fields present in the body.
type UpdateCourseRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Duration    *string          `json:"duration"`
	Fees        *decimal.Decimal `json:"fees"`
	ImageURL    *string          `json:"image_url"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request body", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Duration = strings.TrimSpace(reqData.Duration)
		reqData.ImageURL = strings.TrimSpace(reqData.ImageURL)

		if errs := validators.Struct(reqData); errs != nil {
			message := "Validation failed"
			if validators.HasRequiredFailure(reqData) {
				message = "Title, description, duration, and fees are required"
			}
			return middleware.ValidationErrorResponse(c, message, errs)
		}

		if msg := checkFees(*reqData.Fees); msg != "" {
			return middleware.ValidationErrorResponse(c, "Validation failed", map[string]string{"fees": msg})
		}

		c.Locals(LocalCreateCourse, reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request body", nil)
		}

		errors := make(map[string]string)

		for field, value := range map[string]*string{
			"title":       reqData.Title,
			"description": reqData.Description,
			"duration":    reqData.Duration,
		} {
			if value == nil {
				continue
			}
			*value = strings.TrimSpace(*value)
			if *value == "" {
				errors[field] = field + " must not be empty"
			}
		}

		if reqData.ImageURL != nil {
			*reqData.ImageURL = strings.TrimSpace(*reqData.ImageURL)
		}

		if reqData.Fees != nil {
			if msg := checkFees(*reqData.Fees); msg != "" {
				errors["fees"] = msg
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, "Validation failed", errors)
		}

		c.Locals(LocalUpdateCourse, reqData)
		return c.Next()
	}
}

var maxFees = decimal.New(1, models.FeesIntegerDigits)

// checkFees returns a message when fees would not fit the fees column unchanged.
func checkFees(fees decimal.Decimal) string {
	switch {
	case fees.IsNegative():
		return "fees must not be negative"
	case !fees.Equal(fees.Truncate(models.FeesScale)):
		return "fees must have at most 2 decimal places"
	case fees.GreaterThanOrEqual(maxFees):
		return "fees must be less than " + maxFees.String()
	}
	return ""
}
