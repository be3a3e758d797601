package authController

import (
	"errors"

	"reachout/middleware"
	authService "reachout/services/auth"
	authValidator "reachout/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type AuthController struct {
	Auth *authService.Service
}

func NewAuthController(auth *authService.Service) *AuthController {
	return &AuthController{Auth: auth}
}

// Login exchanges email and password for a bearer token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.LocalLogin).(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request data", nil)
	}

	session, err := ctrl.Auth.Authenticate(c.UserContext(), reqData.Email, reqData.Password)
	if errors.Is(err, authService.ErrInvalidCredentials) {
		zerolog.Ctx(c.UserContext()).Info().Str("ip", c.IP()).Msg("Rejected admin login")
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, true, "Invalid credentials", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Internal server error", err)
	}

	zerolog.Ctx(c.UserContext()).Info().Uint("admin_id", session.Admin.ID).Str("ip", c.IP()).Msg("Admin logged in")

	return middleware.JsonResponse(c, fiber.StatusOK, false, "Login successful", fiber.Map{
		"user":       session.Admin,
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// Logout has no server-side effect; the client discards its token.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, false, "Logout successful", nil)
}

// Me returns the stored profile of the authenticated administrator.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, true, "Access denied. No token provided.", nil)
	}

	admin, err := ctrl.Auth.CurrentAdmin(c.UserContext(), principal)
	if errors.Is(err, authService.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, true, "User not found", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Internal server error", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, false, "", admin.Profile())
}

// CreateAdmin creates an administrator account for initial setup.
func (ctrl *AuthController) CreateAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.LocalCreateAdmin).(*authValidator.CreateAdminRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Invalid request data", nil)
	}

	admin, err := ctrl.Auth.CreateAdministrator(c.UserContext(), reqData.Email, reqData.Password)
	if errors.Is(err, authService.ErrAlreadyExists) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, true, "Admin user already exists", nil)
	}
	if err != nil {
		return middleware.InternalError(c, "Failed to create admin user", err)
	}

	zerolog.Ctx(c.UserContext()).Info().Uint("admin_id", admin.ID).Msg("Admin user created")

	return middleware.JsonResponse(c, fiber.StatusCreated, false, "Admin user created successfully", fiber.Map{
		"id":         admin.ID,
		"email":      admin.Email,
		"created_at": admin.CreatedAt,
	})
}
