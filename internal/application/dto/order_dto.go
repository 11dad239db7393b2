package dto

import (
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

// OrderTypeDineIn tipo de orden por defecto. order_type es libre (dine_in, takeaway, delivery...).
const OrderTypeDineIn = "dine_in"

// OrderItemCreate línea de una orden nueva.
type OrderItemCreate struct {
	MenuItemID          int64   `json:"menu_item_id" validate:"present"`
	Quantity            int     `json:"quantity" validate:"present"`
	SpecialInstructions *string `json:"special_instructions"`
}

// OrderItemResponse línea de orden; UnitPrice y TotalPrice los calcula el servidor.
type OrderItemResponse struct {
	ID                  int64             `json:"id" validate:"present"`
	MenuItemID          int64             `json:"menu_item_id" validate:"present"`
	Quantity            int               `json:"quantity" validate:"present"`
	UnitPrice           decimal.Decimal   `json:"unit_price" validate:"present"`
	TotalPrice          decimal.Decimal   `json:"total_price" validate:"present"`
	SpecialInstructions *string           `json:"special_instructions"`
	MenuItem            *MenuItemResponse `json:"menu_item"`
}

// OrderCreate body para POST /api/orders. Una lista de items vacía es válida en esta capa.
type OrderCreate struct {
	BranchID      int64             `json:"branch_id" validate:"present"`
	CustomerName  *string           `json:"customer_name"`
	CustomerEmail *string           `json:"customer_email"`
	OrderType     string            `json:"order_type"`
	Items         []OrderItemCreate `json:"items" validate:"present,dive"`
}

// SetDefaults order_type dine_in.
func (o *OrderCreate) SetDefaults() {
	o.OrderType = OrderTypeDineIn
}

// OrderUpdate body para PATCH /api/orders/:id.
type OrderUpdate struct {
	Status        nullable.Nullable[string] `json:"status,omitempty"` // pending, preparing, ready, completed, cancelled
	CustomerName  nullable.Nullable[string] `json:"customer_name,omitempty"`
	CustomerEmail nullable.Nullable[string] `json:"customer_email,omitempty"`
}

// OrderResponse salida de una orden con sus líneas.
type OrderResponse struct {
	ID            int64               `json:"id" validate:"present"`
	BranchID      int64               `json:"branch_id" validate:"present"`
	CustomerName  *string             `json:"customer_name"`
	CustomerEmail *string             `json:"customer_email"`
	TotalAmount   decimal.Decimal     `json:"total_amount" validate:"present"`
	Status        string              `json:"status" validate:"present"`
	OrderType     string              `json:"order_type" validate:"present"`
	CreatedAt     time.Time           `json:"created_at" validate:"present"`
	CompletedAt   *time.Time          `json:"completed_at"`
	Items         []OrderItemResponse `json:"items" validate:"dive"`
}

// SetDefaults lista de items vacía en lugar de null.
func (o *OrderResponse) SetDefaults() {
	o.Items = []OrderItemResponse{}
}
