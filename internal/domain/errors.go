package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownSchema   = errors.New("esquema desconocido")
	ErrInvalidImage    = errors.New("imagen inválida")
	ErrPayloadTooLarge = errors.New("archivo demasiado grande")
)
