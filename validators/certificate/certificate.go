package certificateValidator

import (
	"net/url"
	"strings"

	"reachout/middleware"
	"reachout/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalIssueCertificate  = "validatedCertificate"
	LocalCertificateNumber = "validatedCertificateNumber"
)

type IssueCertificateRequest struct {
	StudentName string `json:"student_name" validate:"required,max=255"`
	CourseName  string `json:"course_name" validate:"required,max=255"`
	IssueDate   string `json:"issue_date" validate:"required"`
	CertNumber  string `json:"cert_number" validate:"required,max=100"`
	Status      string `json:"status" validate:"omitempty,oneof=Valid Expired Revoked"`
}

func IssueCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueCertificateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request body", nil)
		}

		reqData.StudentName = strings.TrimSpace(reqData.StudentName)
		reqData.CourseName = strings.TrimSpace(reqData.CourseName)
		reqData.IssueDate = strings.TrimSpace(reqData.IssueDate)
		reqData.CertNumber = strings.TrimSpace(reqData.CertNumber)
		reqData.Status = strings.TrimSpace(reqData.Status)

		if errs := validators.Struct(reqData); errs != nil {
			message := "Validation failed"
			if validators.HasRequiredFailure(reqData) {
				message = "Student name, course name, issue date, and certificate number are required"
			}
			return middleware.ValidationErrorResponse(c, message, errs)
		}

		c.Locals(LocalIssueCertificate, reqData)
		return c.Next()
	}
}

// CertificateNumber decodes the :number path parameter after routing, so
// numbers containing an escaped "/" still reach the lookup, and rejects blanks.
func CertificateNumber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := url.PathUnescape(c.Params("number"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid certificate number", nil)
		}
		if strings.TrimSpace(number) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Certificate number is required", nil)
		}

		c.Locals(LocalCertificateNumber, number)
		return c.Next()
	}
}
