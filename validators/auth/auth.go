package authValidator

import (
	"reachout/middleware"
	"reachout/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalLogin       = "validatedLogin"
	LocalCreateAdmin = "validatedCreateAdmin"

	missingCredentials = "Email and password are required"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request body", nil)
		}

		if errs := validators.Struct(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, missingCredentials, errs)
		}

		c.Locals(LocalLogin, reqData)
		return c.Next()
	}
}

// CreateAdmin validator middleware
func CreateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAdminRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request body", nil)
		}

		if errs := validators.Struct(reqData); errs != nil {
			message := "Validation failed"
			if validators.HasRequiredFailure(reqData) {
				message = missingCredentials
			}
			return middleware.ValidationErrorResponse(c, message, errs)
		}

		c.Locals(LocalCreateAdmin, reqData)
		return c.Next()
	}
}
