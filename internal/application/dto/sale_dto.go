package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySaleCreate body para POST /api/sales. Revenue lo calcula el servidor.
type DailySaleCreate struct {
	MenuItemID int64 `json:"menu_item_id" validate:"present"`
	BranchID   int64 `json:"branch_id" validate:"present"`
	Quantity   int   `json:"quantity" validate:"present"`
}

// DailySaleResponse salida de una venta con snapshot del ítem de menú.
type DailySaleResponse struct {
	ID         int64             `json:"id" validate:"present"`
	MenuItemID int64             `json:"menu_item_id" validate:"present"`
	BranchID   int64             `json:"branch_id" validate:"present"`
	Quantity   int               `json:"quantity" validate:"present"`
	Revenue    decimal.Decimal   `json:"revenue" validate:"present"`
	SaleDate   time.Time         `json:"sale_date" validate:"present"`
	MenuItem   *MenuItemResponse `json:"menu_item"`
}

// SaleByItem agregado de ventas de un ítem en el día.
type SaleByItem struct {
	ItemID       int64           `json:"item_id" validate:"present"`
	ItemName     string          `json:"item_name" validate:"present"` // "Unknown" si el ítem ya no existe
	ItemPrice    decimal.Decimal `json:"item_price" validate:"present"`
	QuantitySold int             `json:"quantity_sold" validate:"present"`
	Revenue      decimal.Decimal `json:"revenue" validate:"present"`
}

// SalesSummary respuesta de GET /api/sales/summary.
type SalesSummary struct {
	Date           string          `json:"date" validate:"present"` // YYYY-MM-DD
	BranchID       *int64          `json:"branch_id"`
	TotalItemsSold int             `json:"total_items_sold" validate:"present"`
	TotalRevenue   decimal.Decimal `json:"total_revenue" validate:"present"`
	SalesByItem    []SaleByItem    `json:"sales_by_item" validate:"present,dive"`
}
