package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bonos-estetica/voucher-service/internal/api/dto"
	"github.com/bonos-estetica/voucher-service/internal/service"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username y password son obligatorios")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token})
}
