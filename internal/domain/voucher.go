package domain

import "time"

// DiscountType enumerates how a voucher reduces a procedure's price.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "Porcentaje"
	DiscountFixedAmount DiscountType = "Monto"
)

// VoucherStatus is the derived lifecycle state of a voucher. It is never
// stored; Expired in particular only exists as a function of the clock.
type VoucherStatus string

const (
	VoucherStatusActive  VoucherStatus = "Activo"
	VoucherStatusUsed    VoucherStatus = "Usado"
	VoucherStatusExpired VoucherStatus = "Expirado"
)

// ValidityDays is the fixed window a voucher stays redeemable after issue.
const ValidityDays = 30

// Voucher is a single-use discount entitlement tied to one client and one
// procedure. Client and Procedure are populated only on denormalized reads.
type Voucher struct {
	ID            int64        `json:"bonoId"`
	Code          string       `json:"codigo"`
	ClientID      int64        `json:"clienteId"`
	ProcedureID   int64        `json:"procedimientoId"`
	DiscountType  DiscountType `json:"tipoDescuento"`
	DiscountValue float64      `json:"valorDescuento"`
	CreatedAt     time.Time    `json:"fechaCreacion"`
	ExpiresAt     time.Time    `json:"fechaExpiracion"`
	Used          bool         `json:"usado"`
	UsedAt        *time.Time   `json:"fechaUso"`

	Client    *Client    `json:"cliente,omitempty"`
	Procedure *Procedure `json:"procedimiento,omitempty"`
}

// Status derives the lifecycle state at the given instant.
func (v *Voucher) Status(now time.Time) VoucherStatus {
	if v.Used {
		return VoucherStatusUsed
	}
	if now.After(v.ExpiresAt) {
		return VoucherStatusExpired
	}
	return VoucherStatusActive
}

// WithinValidity reports whether now falls inside [creation, expiration].
func (v *Voucher) WithinValidity(now time.Time) bool {
	return !now.Before(v.CreatedAt) && !now.After(v.ExpiresAt)
}

// FinalPrice computes the discounted price for a procedure. Percentage
// discounts scale the price; fixed amounts subtract and floor at zero.
func FinalPrice(price float64, discountType DiscountType, value float64) float64 {
	switch discountType {
	case DiscountFixedAmount:
		final := price - value
		if final < 0 {
			return 0
		}
		return final
	default:
		return price - price*value/100
	}
}
