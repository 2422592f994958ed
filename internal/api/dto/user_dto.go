package dto

// UserByIDRequest selects a user.
type UserByIDRequest struct {
	UserID int64 `json:"idUsuario"`
}

// UserCreateRequest payload for new staff accounts.
type UserCreateRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
	Role     string `json:"rol"`
}

// UserUpdateRequest payload for account updates. NuevaContrasena is
// optional; when present the credential is rehashed.
type UserUpdateRequest struct {
	UserID      int64  `json:"usuarioId"`
	Email       string `json:"correo"`
	Role        string `json:"rol"`
	NewPassword string `json:"nuevaContrasena"`
	Active      bool   `json:"activo"`
}

// UserCreatedResponse mutation envelope with the new id.
type UserCreatedResponse struct {
	Estado  bool   `json:"estado"`
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id"`
}
