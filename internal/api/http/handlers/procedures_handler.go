package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bonos-estetica/voucher-service/internal/api/dto"
	"github.com/bonos-estetica/voucher-service/internal/service"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// ProceduresHandler exposes procedure CRUD endpoints.
type ProceduresHandler struct {
	procedures *service.ProcedureService
}

// NewProceduresHandler constructs handler.
func NewProceduresHandler(procedures *service.ProcedureService) *ProceduresHandler {
	return &ProceduresHandler{procedures: procedures}
}

// List handles GET /Procedimientos.
func (h *ProceduresHandler) List(c *fiber.Ctx) error {
	procedures, err := h.procedures.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(procedures)
}

// Get handles POST /Procedimientos/Procedimiento.
func (h *ProceduresHandler) Get(c *fiber.Ctx) error {
	var req dto.ProcedureByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	procedure, err := h.procedures.Get(c.UserContext(), req.ProcedureID)
	if err != nil {
		return err
	}
	return c.JSON(procedure)
}

// Create handles POST /Procedimientos/CrearProcedimiento.
func (h *ProceduresHandler) Create(c *fiber.Ctx) error {
	var req dto.ProcedureCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	procedure, err := h.procedures.Create(c.UserContext(), service.ProcedureInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.ProcedureCreatedResponse{
		Estado:  true,
		Mensaje: "Procedimiento creado correctamente",
		ID:      procedure.ID,
	})
}

// Update handles POST /Procedimientos/ActualizarProcedimiento.
func (h *ProceduresHandler) Update(c *fiber.Ctx) error {
	var req dto.ProcedureUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	err := h.procedures.Update(c.UserContext(), service.ProcedureUpdateInput{
		ID:              req.ProcedureID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Actualización de procedimiento realizada"})
}

// Delete handles POST /Procedimientos/EliminarProcedimiento (soft delete).
func (h *ProceduresHandler) Delete(c *fiber.Ctx) error {
	var req dto.ProcedureByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if err := h.procedures.Deactivate(c.UserContext(), req.ProcedureID); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Eliminación de procedimiento realizada"})
}

// Activate handles POST /Procedimientos/ActivarProcedimiento.
func (h *ProceduresHandler) Activate(c *fiber.Ctx) error {
	var req dto.ProcedureByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	if err := h.procedures.Activate(c.UserContext(), req.ProcedureID); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Activación de procedimiento realizada"})
}
