package domain

import "time"

// Client is a customer record eligible to receive vouchers.
type Client struct {
	ID           int64     `json:"clienteId"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Email        string    `json:"correo"`
	Phone        string    `json:"telefono"`
	RegisteredAt time.Time `json:"fechaRegistro"`
	Active       bool      `json:"activo"`
}
