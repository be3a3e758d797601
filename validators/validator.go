package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"reachout/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LocalID is the c.Locals key ResourceID stores the parsed path id under.
const LocalID = "resourceId"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so error keys match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Struct validates req and returns a field -> message map, or nil when valid.
func Struct(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"request": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

// HasRequiredFailure reports whether any field failed its "required" rule.
func HasRequiredFailure(req interface{}) bool {
	var fieldErrs validator.ValidationErrors
	if !errors.As(validate.Struct(req), &fieldErrs) {
		return false
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// ResourceID validates the ":id" path parameter and stores it as uint under LocalID.
func ResourceID(label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, label+" ID is required", nil)
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid "+label+" ID", nil)
		}

		c.Locals(LocalID, uint(id))
		return c.Next()
	}
}

// IDFrom returns the id stored by ResourceID.
func IDFrom(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalID).(uint)
	return id
}
