package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Inventory stock de un insumo en una sucursal.
type Inventory struct {
	ID               int64
	BranchID         int64
	ItemName         string
	CurrentStock     float64
	Unit             string // g, ml, pieces...
	MinimumThreshold pgtype.Float8
	CostPerUnit      decimal.NullDecimal
	Supplier         pgtype.Text
	LastRestocked    pgtype.Timestamptz
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
