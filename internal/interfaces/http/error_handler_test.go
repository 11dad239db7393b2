package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	apphttp "github.com/jhoicas/restaurante-pos/internal/interfaces/http"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber mínima con el ErrorHandler y
// rutas dummy que ejercitan BindJSON / BindQuery.
func buildTestApp() *fiber.App {
	v := validation.New()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})

	app.Post("/expenses", func(c *fiber.Ctx) error {
		in, err := apphttp.BindJSON[dto.DailyExpenseCreate](c, v)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item_name": in.ItemName, "total_amount": in.TotalAmount})
	})
	app.Post("/orders", func(c *fiber.Ctx) error {
		in, err := apphttp.BindJSON[dto.OrderCreate](c, v)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"items": len(in.Items), "order_type": in.OrderType})
	})
	app.Get("/orders", func(c *fiber.Ctx) error {
		q, err := apphttp.BindQuery[dto.OrderListQuery](c, v)
		if err != nil {
			return err
		}
		return c.JSON(q)
	})
	app.Get("/boom/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "notfound":
			return fmt.Errorf("orden 9: %w", domain.ErrNotFound)
		case "image":
			return fmt.Errorf("%w: tipo no permitido", domain.ErrInvalidImage)
		case "large":
			return domain.ErrPayloadTooLarge
		case "fiber":
			return fiber.NewError(fiber.StatusForbidden, "sin permiso")
		}
		return fmt.Errorf("conexión perdida")
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// ──────────────────────────────────────────────────────────────────────────────
// BindJSON
// ──────────────────────────────────────────────────────────────────────────────

func TestBindJSON_PayloadValido(t *testing.T) {
	app := buildTestApp()

	status, body := doJSON(t, app, "POST", "/expenses",
		`{"category":"Produce","item_name":"Tomatoes","unit_cost":2.5,"total_amount":25.0,"branch_id":1}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"item_name":"Tomatoes","total_amount":"25"}`, string(body))
}

func TestBindJSON_ErroresPorCampo422(t *testing.T) {
	app := buildTestApp()

	status, body := doJSON(t, app, "POST", "/expenses", `{"category":"Produce","unit_cost":"abc","branch_id":1}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	var resp dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "VALIDATION", resp.Code)

	fields := make(map[string]string)
	for _, fe := range resp.Errors {
		fields[fe.Field] = fe.Tag
	}
	assert.Equal(t, map[string]string{
		"item_name":    validation.TagPresent,
		"unit_cost":    validation.TagType,
		"total_amount": validation.TagPresent,
	}, fields)
}

func TestBindJSON_BodyVacioReportaRequeridos(t *testing.T) {
	app := buildTestApp()

	status, body := doJSON(t, app, "POST", "/orders", "")

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	var resp dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "branch_id", resp.Errors[0].Field)
	assert.Equal(t, "items", resp.Errors[1].Field)
}

func TestBindJSON_OrdenSinItems(t *testing.T) {
	app := buildTestApp()

	status, body := doJSON(t, app, "POST", "/orders", `{"branch_id":1,"items":[]}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"items":0,"order_type":"dine_in"}`, string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// BindQuery
// ──────────────────────────────────────────────────────────────────────────────

func TestBindQuery(t *testing.T) {
	app := buildTestApp()

	status, body := doJSON(t, app, "GET", "/orders", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status_filter":null,"date_filter":null,"skip":0,"limit":100}`, string(body))

	status, body = doJSON(t, app, "GET", "/orders?skip=20&limit=10&status_filter=pending&date_filter=2024-05-01", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status_filter":"pending","date_filter":"2024-05-01","skip":20,"limit":10}`, string(body))

	for _, query := range []string{"limit=muchos", "skip=-1", "date_filter=mayo"} {
		status, _ = doJSON(t, app, "GET", "/orders?"+query, "")
		assert.Equal(t, fiber.StatusUnprocessableEntity, status, query)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ErrorHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorHandler_MapeoDeErrores(t *testing.T) {
	tests := []struct {
		kind   string
		status int
		code   string
	}{
		{"notfound", fiber.StatusNotFound, "NOT_FOUND"},
		{"image", fiber.StatusBadRequest, "INVALID_IMAGE"},
		{"large", fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"fiber", fiber.StatusForbidden, "FORBIDDEN"},
		{"otro", fiber.StatusInternalServerError, "INTERNAL"},
	}
	app := buildTestApp()

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			status, body := doJSON(t, app, "GET", "/boom/"+tt.kind, "")

			assert.Equal(t, tt.status, status)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	status, body := doJSON(t, buildTestApp(), "GET", "/no-existe", "")

	assert.Equal(t, fiber.StatusNotFound, status)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestToValidationErrorResponse(t *testing.T) {
	verr := &validation.ValidationError{Errors: []validation.FieldError{
		{Field: "url", Tag: validation.TagImageURL, Message: validation.MsgInvalidImageFormat},
	}}

	resp := apphttp.ToValidationErrorResponse(verr)

	assert.Equal(t, "VALIDATION", resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Invalid image format", resp.Errors[0].Message)
}
