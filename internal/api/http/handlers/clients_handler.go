package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bonos-estetica/voucher-service/internal/api/dto"
	"github.com/bonos-estetica/voucher-service/internal/service"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// ClientsHandler exposes client CRUD endpoints.
type ClientsHandler struct {
	clients *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clients *service.ClientService) *ClientsHandler {
	return &ClientsHandler{clients: clients}
}

// List handles GET /Clientes.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.clients.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(clients)
}

// Get handles POST /Clientes/Cliente.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	var req dto.ClientByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	client, err := h.clients.Get(c.UserContext(), req.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Create handles POST /Clientes/CrearCliente.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	client, err := h.clients.Create(c.UserContext(), service.ClientInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		RegisteredAt: req.RegisteredAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.ClientCreatedResponse{
		Estado:  true,
		Mensaje: "Cliente creado correctamente",
		ID:      client.ID,
	})
}

// Update handles POST /Clientes/ActualizarCliente.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.ClientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	err := h.clients.Update(c.UserContext(), service.ClientUpdateInput{
		ID:           req.ClientID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		RegisteredAt: req.RegisteredAt,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Actualización de cliente realizada"})
}

// Delete handles POST /Clientes/EliminarCliente (soft delete).
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	var req dto.ClientByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if err := h.clients.Deactivate(c.UserContext(), req.ClientID); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Eliminación de cliente realizada"})
}

// Activate handles POST /Clientes/ActivarCliente.
func (h *ClientsHandler) Activate(c *fiber.Ctx) error {
	var req dto.ClientByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if err := h.clients.Activate(c.UserContext(), req.ClientID); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Activación de cliente realizada"})
}
