package validation

import (
	"strings"

	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// Reglas reportadas en FieldError.Tag además de las de go-playground/validator.
const (
	TagPresent      = "present"
	TagNotNull      = "not_null"
	TagType         = "type"
	TagUserRole     = "user_role"
	TagMovementType = "movement_type"
	TagImageURL     = "image_url"
)

// MsgInvalidImageFormat mensaje de la regla image_url (forma parte del contrato de la API).
const MsgInvalidImageFormat = "Invalid image format"

// FieldError error de un campo. Field usa la ruta JSON del campo (ej. items[0].quantity).
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError reúne todos los errores de un payload. Nunca se devuelve junto a un valor parcial.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Has indica si hay un error para el campo dado.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// For devuelve el primer error del campo dado.
func (e *ValidationError) For(field string) (FieldError, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// errorSet acumula FieldError conservando solo el primero por campo.
type errorSet struct {
	errs []FieldError
	seen map[string]bool
}

func (s *errorSet) add(field, tag, msg string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[field] {
		return
	}
	s.seen[field] = true
	s.errs = append(s.errs, FieldError{Field: field, Tag: tag, Message: msg})
}

func (s *errorSet) err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: s.errs}
}
