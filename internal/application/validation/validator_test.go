package validation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
)

func TestVar(t *testing.T) {
	assert.NoError(t, v.Var("email", "ana@example.com", "email"))

	err := v.Var("email", "ana", "email")
	verr := requireValidationError(t, err)
	assertFieldTag(t, verr, "email", "email")

	assert.NoError(t, v.Var("role", "worker", validation.TagUserRole))
	assert.Error(t, v.Var("role", "root", validation.TagUserRole))
}

func TestStruct_ValidaValoresSinDecodificar(t *testing.T) {
	resp := dto.ImageUploadResponse{URL: "/static/images/a.bmp", Filename: "a.bmp", Size: 3}

	verr := requireValidationError(t, v.Struct(&resp))
	fe, ok := verr.For("url")
	require.True(t, ok)
	assert.Equal(t, validation.MsgInvalidImageFormat, fe.Message)

	resp.URL = "/static/images/a.webp"
	assert.NoError(t, v.Struct(resp))
}

func TestValidator_UsoConcurrente(t *testing.T) {
	payloads := [][]byte{
		[]byte(`{"username":"ana","email":"ana@example.com","password":"x"}`),
		[]byte(`{"username":"luis","email":"malo","password":"x"}`),
	}

	var wg sync.WaitGroup
	errs := make([]error, 50)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = validation.DecodeJSON[dto.AdminCreate](v, payloads[i%2])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if i%2 == 0 {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	}
}

func TestValidationError_Mensaje(t *testing.T) {
	err := &validation.ValidationError{Errors: []validation.FieldError{
		{Field: "items[0].quantity", Tag: validation.TagType, Message: "tipo inválido"},
		{Field: "branch_id", Tag: validation.TagPresent, Message: "campo requerido"},
	}}

	assert.Equal(t, "validación: items[0].quantity: tipo inválido; branch_id: campo requerido", err.Error())
	assert.True(t, err.Has("branch_id"))
	assert.False(t, err.Has("items"))
}
