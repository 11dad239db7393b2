package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-pos/internal/application/validation"
)

// BindJSON decodifica y valida el body de la petición como T.
// Un body vacío se trata como objeto vacío para que los campos requeridos se reporten uno a uno.
func BindJSON[T any](c *fiber.Ctx, v *validation.Validator) (T, error) {
	body := c.Body()
	if len(body) == 0 {
		body = []byte("{}")
	}
	return validation.DecodeJSON[T](v, body)
}

// BindQuery decodifica y valida los parámetros de query como T.
func BindQuery[T any](c *fiber.Ctx, v *validation.Validator) (T, error) {
	params := make(map[string]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	return validation.DecodeQuery[T](v, params)
}
