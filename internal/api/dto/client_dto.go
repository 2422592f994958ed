package dto

import "time"

// ClientByIDRequest selects a client.
type ClientByIDRequest struct {
	ClientID int64 `json:"idCliente"`
}

// ClientCreateRequest payload for new clients.
type ClientCreateRequest struct {
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Email        string    `json:"correo"`
	Phone        string    `json:"telefono"`
	RegisteredAt time.Time `json:"fechaRegistro"`
}

// ClientUpdateRequest payload for client updates.
type ClientUpdateRequest struct {
	ClientID     int64     `json:"clienteId"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Email        string    `json:"correo"`
	Phone        string    `json:"telefono"`
	RegisteredAt time.Time `json:"fechaRegistro"`
	Active       bool      `json:"activo"`
}

// ClientCreatedResponse mutation envelope with the new id.
type ClientCreatedResponse struct {
	Estado  bool   `json:"estado"`
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id"`
}
