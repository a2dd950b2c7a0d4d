package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse estado de cada store registrado.
type HealthResponse struct {
	Status string            `json:"status"`
	Stores map[string]string `json:"stores"`
}
