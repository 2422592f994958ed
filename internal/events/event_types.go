package events

import (
	"time"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventVoucherIssued   EventType = "voucher_issued"
	EventVoucherApplied  EventType = "voucher_applied"
	EventVoucherReverted EventType = "voucher_reverted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	VoucherID int64       `json:"bono_id"`
	ActorID   int64       `json:"usuario_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// VoucherIssuedPayload payload.
type VoucherIssuedPayload struct {
	Code          string              `json:"codigo"`
	ClientID      int64               `json:"cliente_id"`
	ProcedureID   int64               `json:"procedimiento_id"`
	DiscountType  domain.DiscountType `json:"tipo_descuento"`
	DiscountValue float64             `json:"valor_descuento"`
	ExpiresAt     time.Time           `json:"fecha_expiracion"`
}

// VoucherAppliedPayload payload.
type VoucherAppliedPayload struct {
	Code          string              `json:"codigo"`
	ProcedureID   int64               `json:"procedimiento_id"`
	OriginalPrice float64             `json:"precio_original"`
	DiscountType  domain.DiscountType `json:"tipo_descuento"`
	DiscountValue float64             `json:"valor_descuento"`
	FinalPrice    float64             `json:"precio_final"`
}

// VoucherRevertedPayload payload.
type VoucherRevertedPayload struct {
	Code string `json:"codigo"`
}
