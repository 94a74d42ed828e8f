package dto

// ErrorResponse cuerpo de error HTTP. Field indica el campo a corregir en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
