package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse estado de la consola.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	API     string `json:"api"`
}
