package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bonos-estetica/voucher-service/internal/api/dto"
	"github.com/bonos-estetica/voucher-service/internal/service"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// UsersHandler exposes staff account CRUD endpoints. Password hash and
// salt never appear in responses.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /Usuarios.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Get handles POST /Usuarios/Usuario.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	var req dto.UserByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	user, err := h.users.Get(c.UserContext(), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Create handles POST /Usuarios/CrearUsuario.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	user, err := h.users.Create(c.UserContext(), service.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UserCreatedResponse{
		Estado:  true,
		Mensaje: "Usuario creado correctamente",
		ID:      user.ID,
	})
}

// Update handles POST /Usuarios/ActualizarUsuario.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	err := h.users.Update(c.UserContext(), service.UserUpdateInput{
		ID:          req.UserID,
		Email:       req.Email,
		Role:        req.Role,
		NewPassword: req.NewPassword,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Actualización de usuario realizada"})
}

// Delete handles POST /Usuarios/EliminarUsuario (soft delete).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	var req dto.UserByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if err := h.users.Deactivate(c.UserContext(), req.UserID); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Eliminación de usuario realizada"})
}

// Activate handles POST /Usuarios/ActivarUsuario.
func (h *UsersHandler) Activate(c *fiber.Ctx) error {
	var req dto.UserByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if err := h.users.Activate(c.UserContext(), req.UserID); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Activación de usuario realizada"})
}
