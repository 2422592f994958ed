package dto

// VoucherCreateRequest payload for issuing a voucher. The discount value
// is interpreted as a percentage.
type VoucherCreateRequest struct {
	ClientID      int64   `json:"clienteId"`
	ProcedureID   int64   `json:"procedimientoId"`
	DiscountValue float64 `json:"valorDescuento"`
}

// VoucherApplyRequest payload for redeeming a voucher. ProcedureID must
// match the voucher's stored procedure.
type VoucherApplyRequest struct {
	VoucherID   int64 `json:"bonoId"`
	ProcedureID int64 `json:"procedimientoId"`
}

// VoucherRevertRequest payload for reverting a redeemed voucher.
type VoucherRevertRequest struct {
	VoucherID int64 `json:"bonoId"`
}

// VoucherByIDRequest selects a voucher.
type VoucherByIDRequest struct {
	VoucherID int64 `json:"idBono"`
}

// VoucherByCodeRequest selects a voucher by its generated code.
type VoucherByCodeRequest struct {
	Code string `json:"codigoBono"`
}

// VouchersByClientRequest selects a client's active vouchers.
type VouchersByClientRequest struct {
	ClientID int64 `json:"idCliente"`
}

// VoucherIssuedResponse mutation envelope with the generated code.
type VoucherIssuedResponse struct {
	Estado  bool   `json:"estado"`
	Mensaje string `json:"mensaje"`
	ID      string `json:"id"`
}

// VoucherAppliedResponse reports the discount computation.
type VoucherAppliedResponse struct {
	Estado        bool    `json:"estado"`
	Mensaje       string  `json:"mensaje"`
	OriginalPrice float64 `json:"precioOriginal"`
	Discount      float64 `json:"descuento"`
	DiscountType  string  `json:"tipoDescuento"`
	FinalPrice    float64 `json:"precioFinal"`
}
