package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

// ErrorHandler traduce los errores devueltos por los handlers a respuestas JSON.
// *validation.ValidationError -> 422 con el detalle por campo; *fiber.Error conserva su status;
// errores de dominio conocidos a su status; el resto 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			log.Debug().Str("path", c.Path()).Int("errors", len(verr.Errors)).Msg("payload rechazado")
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ToValidationErrorResponse(verr))
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(dto.ErrorResponse{Code: codeForStatus(ferr.Code), Message: ferr.Message})
		}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidImage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: err.Error()})
		case errors.Is(err, domain.ErrPayloadTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "PAYLOAD_TOO_LARGE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		}

		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

// ToValidationErrorResponse convierte el error de validación al cuerpo 422.
func ToValidationErrorResponse(verr *validation.ValidationError) dto.ValidationErrorResponse {
	out := dto.ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: verr.Error(),
		Errors:  make([]dto.FieldErrorDTO, 0, len(verr.Errors)),
	}
	for _, fe := range verr.Errors {
		out.Errors = append(out.Errors, dto.FieldErrorDTO{Field: fe.Field, Tag: fe.Tag, Message: fe.Message})
	}
	return out
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "INVALID_BODY"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION"
	}
	if status >= 500 {
		return "INTERNAL"
	}
	return "ERROR"
}
