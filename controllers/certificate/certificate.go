package certificateController

import (
	"errors"

	"reachout/middleware"
	certificateService "reachout/services/certificate"
	"reachout/validators"
	certificateValidator "reachout/validators/certificate"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type CertificateController struct {
	Certificates *certificateService.Service
}

func NewCertificateController(certs *certificateService.Service) *CertificateController {
	return &CertificateController{Certificates: certs}
}

// VerifyCertificate is the public lookup by certificate number.
func (ctrl *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	number, _ := c.Locals(certificateValidator.LocalCertificateNumber).(string)

	result, err := ctrl.Certificates.VerifyByNumber(c.UserContext(), number)
	switch {
	case errors.Is(err, certificateService.ErrNumberRequired):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Certificate number is required", nil)
	case errors.Is(err, certificateService.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Certificate not found or invalid", nil)
	case err != nil:
		return middleware.InternalError(c, "Failed to verify certificate", err)
	}

	message := "Certificate verified successfully"
	if !result.Valid {
		message = "Certificate found but status is not valid"
	}

	return c.Status(fiber.StatusOK).JSON(middleware.Envelope{
		Message: message,
		Data:    result.Certificate,
		Valid:   &result.Valid,
	})
}

func (ctrl *CertificateController) GetAllCertificates(c *fiber.Ctx) error {
	certs, err := ctrl.Certificates.List(c.UserContext())
	if err != nil {
		return middleware.InternalError(c, "Failed to fetch certificates", err)
	}
	return middleware.ListResponse(c, certs, len(certs))
}

func (ctrl *CertificateController) GetCertificate(c *fiber.Ctx) error {
	cert, err := ctrl.Certificates.Get(c.UserContext(), validators.IDFrom(c))
	if errors.Is(err, certificateService.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Certificate not found", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Failed to fetch certificate", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, false, "", cert)
}

func (ctrl *CertificateController) CreateCertificate(c *fiber.Ctx) error {
	reqData, ok := c.Locals(certificateValidator.LocalIssueCertificate).(*certificateValidator.IssueCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request data", nil)
	}

	cert, err := ctrl.Certificates.Issue(c.UserContext(), certificateService.IssueInput{
		StudentName: reqData.StudentName,
		CourseName:  reqData.CourseName,
		IssueDate:   reqData.IssueDate,
		CertNumber:  reqData.CertNumber,
		Status:      reqData.Status,
	})
	switch {
	case errors.Is(err, certificateService.ErrDuplicate):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Certificate number already exists", nil)
	case errors.Is(err, certificateService.ErrInvalidDate):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid issue date format", nil)
	case errors.Is(err, certificateService.ErrInvalidStatus):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Status must be Valid, Expired or Revoked", nil)
	case err != nil:
		return middleware.InternalError(c, "Failed to create certificate", err)
	}

	zerolog.Ctx(c.UserContext()).Info().Str("cert_number", cert.CertNumber).Msg("Certificate issued")

	return middleware.JsonResponse(c, fiber.StatusCreated, false, "Certificate created successfully", cert)
}

func (ctrl *CertificateController) DeleteCertificate(c *fiber.Ctx) error {
	err := ctrl.Certificates.Delete(c.UserContext(), validators.IDFrom(c))
	if errors.Is(err, certificateService.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "Certificate not found", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Failed to delete certificate", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, false, "Certificate deleted successfully", nil)
}
