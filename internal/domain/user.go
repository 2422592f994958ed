package domain

import "fmt"

// Role enumerates staff authorization levels. Authorization decisions
// always go through this closed set, never raw string comparison.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleRecepcion Role = "Recepcion"
)

// ParseRole validates a role value against the closed enumeration.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleRecepcion:
		return Role(value), nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", value)
	}
}

// User is a staff account able to operate the system.
// PasswordSalt is nil for legacy rows hashed with unsalted SHA-256.
type User struct {
	ID           int64   `json:"usuarioId"`
	Name         string  `json:"nombre"`
	Email        string  `json:"correo"`
	PasswordHash string  `json:"-"`
	PasswordSalt *string `json:"-"`
	Role         Role    `json:"rol"`
	Active       bool    `json:"activo"`
}
