package certificateRoutes

import (
	certificateController "reachout/controllers/certificate"
	"reachout/validators"
	certificateValidator "reachout/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(api fiber.Router, ctrl *certificateController.CertificateController, requireAdmin fiber.Handler) {
	certGroup := api.Group("/certificates")

	// Public lookup, registered before the admin routes
	certGroup.Get("/verify/:number?", certificateValidator.CertificateNumber(), ctrl.VerifyCertificate)

	certGroup.Get("/", requireAdmin, ctrl.GetAllCertificates)
	certGroup.Get("/:id", requireAdmin, validators.ResourceID("Certificate"), ctrl.GetCertificate)
	certGroup.Post("/", requireAdmin, certificateValidator.IssueCertificate(), ctrl.CreateCertificate)
	certGroup.Delete("/:id", requireAdmin, validators.ResourceID("Certificate"), ctrl.DeleteCertificate)
}
