package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorDTO error de un campo concreto (ruta en notación JSON, ej. items[0].quantity).
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo 422 con el detalle por campo.
type ValidationErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Errors  []FieldErrorDTO `json:"errors"`
}
