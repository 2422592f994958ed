package dto

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// StatusResponse is the mutation envelope shared by all write endpoints.
type StatusResponse struct {
	Estado  bool   `json:"estado"`
	Mensaje string `json:"mensaje"`
}
