package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Tipos de movimiento de stock.
const (
	MovementRestock    = "restock"
	MovementUsage      = "usage"
	MovementWaste      = "waste"
	MovementAdjustment = "adjustment"
)

// StockMovement movimiento sobre un registro de Inventory.
type StockMovement struct {
	ID           int64
	InventoryID  int64
	MovementType string
	Quantity     float64
	Unit         string
	Reason       pgtype.Text
	CreatedAt    time.Time
	CreatedBy    pgtype.Int8
}
