package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bonos-estetica/voucher-service/internal/api/dto"
	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/service"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// VouchersHandler exposes the voucher lifecycle endpoints. Every route
// sits behind the bearer middleware, so the acting user id for the audit
// trail is always available.
type VouchersHandler struct {
	vouchers *service.VoucherService
}

// NewVouchersHandler constructs handler.
func NewVouchersHandler(vouchers *service.VoucherService) *VouchersHandler {
	return &VouchersHandler{vouchers: vouchers}
}

// List handles GET /Bonos.
func (h *VouchersHandler) List(c *fiber.Ctx) error {
	vouchers, err := h.vouchers.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(vouchers)
}

// GetByCode handles POST /Bonos/Bono.
func (h *VouchersHandler) GetByCode(c *fiber.Ctx) error {
	var req dto.VoucherByCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	voucher, err := h.vouchers.GetByCode(c.UserContext(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(voucher)
}

// Issue handles POST /Bonos/GenerarBono.
func (h *VouchersHandler) Issue(c *fiber.Ctx) error {
	var req dto.VoucherCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	actorID, err := actingUserID(c)
	if err != nil {
		return err
	}

	voucher, err := h.vouchers.Issue(c.UserContext(), actorID, service.IssueInput{
		ClientID:      req.ClientID,
		ProcedureID:   req.ProcedureID,
		DiscountValue: req.DiscountValue,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.VoucherIssuedResponse{
		Estado:  true,
		Mensaje: "Bono creado correctamente",
		ID:      voucher.Code,
	})
}

// Apply handles POST /Bonos/AplicarBono.
func (h *VouchersHandler) Apply(c *fiber.Ctx) error {
	var req dto.VoucherApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	actorID, err := actingUserID(c)
	if err != nil {
		return err
	}

	result, err := h.vouchers.Apply(c.UserContext(), actorID, req.VoucherID, req.ProcedureID)
	if err != nil {
		return err
	}

	return c.JSON(dto.VoucherAppliedResponse{
		Estado:        true,
		Mensaje:       "Bono aplicado correctamente",
		OriginalPrice: result.OriginalPrice,
		Discount:      result.DiscountValue,
		DiscountType:  string(result.DiscountType),
		FinalPrice:    result.FinalPrice,
	})
}

// Revert handles POST /Bonos/RevertirBono.
func (h *VouchersHandler) Revert(c *fiber.Ctx) error {
	var req dto.VoucherRevertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}

	actorID, err := actingUserID(c)
	if err != nil {
		return err
	}

	if err := h.vouchers.Revert(c.UserContext(), actorID, req.VoucherID); err != nil {
		return err
	}

	return c.JSON(dto.StatusResponse{Estado: true, Mensaje: "Uso del bono revertido correctamente"})
}

// ByClient handles POST /Bonos/BonosCliente.
func (h *VouchersHandler) ByClient(c *fiber.Ctx) error {
	var req dto.VouchersByClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	vouchers, err := h.vouchers.ActiveForClient(c.UserContext(), req.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(vouchers)
}

// History handles POST /Bonos/HistorialBono.
func (h *VouchersHandler) History(c *fiber.Ctx) error {
	var req dto.VoucherByIDRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo de solicitud inválido")
	}
	history, err := h.vouchers.History(c.UserContext(), req.VoucherID)
	if err != nil {
		return err
	}
	return c.JSON(history)
}

func actingUserID(c *fiber.Ctx) (int64, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return 0, apperrors.NewUnauthorized("autenticación requerida")
	}
	return principal.User.ID, nil
}
