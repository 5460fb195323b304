package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse respuesta de GET /api/health (objetivo del sondeo de
// conectividad del cliente).
type HealthResponse struct {
	Status string `json:"status"`
}
