// Package schema expone los shapes de la API por nombre para validar payloads arbitrarios
// (herramientas, fixtures, pruebas de contrato).
package schema

import (
	"fmt"
	"sort"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
)

type decodeFunc func(v *validation.Validator, data []byte) (any, error)

func entry[T any]() decodeFunc {
	return func(v *validation.Validator, data []byte) (any, error) {
		out, err := validation.DecodeJSON[T](v, data)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

var registry = map[string]decodeFunc{
	// Usuarios
	"user_response":  entry[dto.UserResponse](),
	"admin_create":   entry[dto.AdminCreate](),
	"admin_update":   entry[dto.AdminUpdate](),
	"admin_login":    entry[dto.AdminLogin](),
	"admin_response": entry[dto.AdminResponse](),
	"token":          entry[dto.Token](),
	"token_data":     entry[dto.TokenData](),

	// Sucursales
	"branch_create":   entry[dto.BranchCreate](),
	"branch_update":   entry[dto.BranchUpdate](),
	"branch_response": entry[dto.BranchResponse](),

	// Gastos
	"expense_category_create":   entry[dto.ExpenseCategoryCreate](),
	"expense_category_response": entry[dto.ExpenseCategoryResponse](),
	"daily_expense_create":      entry[dto.DailyExpenseCreate](),
	"daily_expense_update":      entry[dto.DailyExpenseUpdate](),
	"daily_expense_response":    entry[dto.DailyExpenseResponse](),
	"quick_expense_create":      entry[dto.QuickExpenseCreate](),
	"expense_summary":           entry[dto.ExpenseSummary](),

	// Menú
	"ingredient_create":   entry[dto.IngredientCreate](),
	"ingredient_update":   entry[dto.IngredientUpdate](),
	"ingredient_response": entry[dto.IngredientResponse](),
	"menu_item_create":    entry[dto.MenuItemCreate](),
	"menu_item_update":    entry[dto.MenuItemUpdate](),
	"menu_item_response":  entry[dto.MenuItemResponse](),

	// Órdenes
	"order_item_create":   entry[dto.OrderItemCreate](),
	"order_item_response": entry[dto.OrderItemResponse](),
	"order_create":        entry[dto.OrderCreate](),
	"order_update":        entry[dto.OrderUpdate](),
	"order_response":      entry[dto.OrderResponse](),

	// Ventas
	"daily_sale_create":   entry[dto.DailySaleCreate](),
	"daily_sale_response": entry[dto.DailySaleResponse](),
	"sales_summary":       entry[dto.SalesSummary](),

	// Inventario
	"inventory_create":        entry[dto.InventoryCreate](),
	"inventory_update":        entry[dto.InventoryUpdate](),
	"inventory_response":      entry[dto.InventoryResponse](),
	"stock_movement_create":   entry[dto.StockMovementCreate](),
	"stock_movement_response": entry[dto.StockMovementResponse](),

	// Reportes
	"daily_report_response": entry[dto.DailyReportResponse](),
	"dashboard_summary":     entry[dto.DashboardSummary](),

	"image_upload_response": entry[dto.ImageUploadResponse](),

	// Query de listados
	"expense_list_query":   entry[dto.ExpenseListQuery](),
	"menu_list_query":      entry[dto.MenuListQuery](),
	"order_list_query":     entry[dto.OrderListQuery](),
	"sale_list_query":      entry[dto.SaleListQuery](),
	"inventory_list_query": entry[dto.InventoryListQuery](),
}

// Names devuelve los nombres registrados en orden alfabético.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate decodifica data con el shape indicado.
// Devuelve domain.ErrUnknownSchema si el nombre no existe y *validation.ValidationError si el payload es inválido.
func Validate(v *validation.Validator, name string, data []byte) (any, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSchema, name)
	}
	return fn(v, data)
}
