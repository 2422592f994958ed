package domain

// Procedure is a billable treatment with a price and duration.
type Procedure struct {
	ID              int64   `json:"procedimientoId"`
	Name            string  `json:"nombre"`
	Description     string  `json:"descripcion"`
	Price           float64 `json:"precio"`
	DurationMinutes int     `json:"duracion"`
	Active          bool    `json:"activo"`
}
