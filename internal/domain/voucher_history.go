package domain

import "time"

// HistoryAction tags an audit entry with the transition that produced it.
type HistoryAction string

const (
	HistoryActionCreated  HistoryAction = "CREADO"
	HistoryActionUsed     HistoryAction = "USADO"
	HistoryActionReverted HistoryAction = "REVERTIDO"
)

// VoucherHistory is an immutable audit record. Exactly one row is appended
// per voucher lifecycle transition; rows are never updated or deleted.
type VoucherHistory struct {
	ID        int64         `json:"historialId"`
	VoucherID int64         `json:"bonoId"`
	Action    HistoryAction `json:"accion"`
	Date      time.Time     `json:"fecha"`
	UserID    int64         `json:"usuarioId"`
}
