package dto

// ProcedureByIDRequest selects a procedure.
type ProcedureByIDRequest struct {
	ProcedureID int64 `json:"idProcedimiento"`
}

// ProcedureCreateRequest payload for new procedures.
type ProcedureCreateRequest struct {
	Name            string  `json:"nombre"`
	Description     string  `json:"descripcion"`
	Price           float64 `json:"precio"`
	DurationMinutes int     `json:"duracion"`
}

// ProcedureUpdateRequest payload for procedure updates.
type ProcedureUpdateRequest struct {
	ProcedureID     int64   `json:"procedimientoId"`
	Name            string  `json:"nombre"`
	Description     string  `json:"descripcion"`
	Price           float64 `json:"precio"`
	DurationMinutes int     `json:"duracion"`
	Active          bool    `json:"activo"`
}

// ProcedureCreatedResponse mutation envelope with the new id.
type ProcedureCreatedResponse struct {
	Estado  bool   `json:"estado"`
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id"`
}
