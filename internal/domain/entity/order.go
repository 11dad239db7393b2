package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order orden de una sucursal.
type Order struct {
	ID            int64
	BranchID      int64
	CustomerName  pgtype.Text
	CustomerEmail pgtype.Text
	TotalAmount   decimal.Decimal
	Status        string
	OrderType     string // dine_in, takeaway, delivery
	CreatedAt     time.Time
	CompletedAt   pgtype.Timestamptz
	Items         []*OrderItem
}

// OrderItem línea de una orden con el precio congelado al momento de la venta.
type OrderItem struct {
	ID                  int64
	OrderID             int64
	MenuItemID          int64
	Quantity            int
	UnitPrice           decimal.Decimal
	TotalPrice          decimal.Decimal
	SpecialInstructions pgtype.Text
	MenuItem            *MenuItem
}
