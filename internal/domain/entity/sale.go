package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySale cantidad vendida de un ítem en una sucursal en una fecha. Revenue = precio * cantidad.
type DailySale struct {
	ID         int64
	MenuItemID int64
	BranchID   int64
	Quantity   int
	Revenue    decimal.Decimal
	SaleDate   time.Time
	MenuItem   *MenuItem
}
