package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/api/dto"
	"github.com/jobboard/jobboard-api/internal/service"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// AuthHandler exposes the login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// LoginUser handles POST /user-auth.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if blank(req.Username, req.Password) {
		return apperrors.NewValidationError("username and password required", nil)
	}

	token, exp, err := h.auth.LoginUser(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// LoginCompany handles POST /company-auth.
func (h *AuthHandler) LoginCompany(c *fiber.Ctx) error {
	var req dto.CompanyLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if blank(req.Handle, req.Password) {
		return apperrors.NewValidationError("handle and password required", nil)
	}

	token, exp, err := h.auth.LoginCompany(c.UserContext(), req.Handle, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}
