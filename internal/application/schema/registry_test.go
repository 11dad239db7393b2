package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/schema"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
)

func TestNames_OrdenadosYCompletos(t *testing.T) {
	names := schema.Names()

	assert.IsIncreasing(t, names)
	for _, want := range []string{"admin_create", "daily_expense_create", "order_create", "image_upload_response", "dashboard_summary", "stock_movement_create"} {
		assert.Contains(t, names, want)
	}
}

func TestValidate_DevuelveShapeTipado(t *testing.T) {
	out, err := schema.Validate(validation.New(), "order_create", []byte(`{"branch_id":1,"items":[]}`))

	require.NoError(t, err)
	order, ok := out.(dto.OrderCreate)
	require.True(t, ok, "tipo %T", out)
	assert.Equal(t, dto.OrderTypeDineIn, order.OrderType)
}

func TestValidate_PayloadInvalido(t *testing.T) {
	out, err := schema.Validate(validation.New(), "admin_login", []byte(`{"username":"ana"}`))

	assert.Nil(t, out)
	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("password"))
}

func TestValidate_NombreDesconocido(t *testing.T) {
	_, err := schema.Validate(validation.New(), "pedido", []byte(`{}`))

	assert.True(t, errors.Is(err, domain.ErrUnknownSchema))
}

func TestValidate_TodosLosUpdatesAceptanVacio(t *testing.T) {
	v := validation.New()
	for _, name := range []string{"admin_update", "branch_update", "daily_expense_update", "ingredient_update", "menu_item_update", "order_update", "inventory_update"} {
		_, err := schema.Validate(v, name, []byte(`{}`))
		assert.NoError(t, err, name)
	}
}

func TestValidate_ListadosConDefaults(t *testing.T) {
	v := validation.New()
	for _, name := range []string{"expense_list_query", "menu_list_query", "order_list_query", "sale_list_query", "inventory_list_query"} {
		_, err := schema.Validate(v, name, []byte(`{}`))
		assert.NoError(t, err, name)
	}

	out, err := schema.Validate(v, "menu_list_query", []byte(`{"skip":"5"}`))
	require.NoError(t, err)
	q, ok := out.(dto.MenuListQuery)
	require.True(t, ok, "tipo %T", out)
	assert.Equal(t, 5, q.Skip)
	assert.Equal(t, dto.DefaultListLimit, q.Limit)
	assert.True(t, q.AvailableOnly)

	_, err = schema.Validate(v, "sale_list_query", []byte(`{"limit":0}`))
	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("limit"))
}
