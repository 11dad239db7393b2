package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// MenuItem producto del menú. BranchID NULL = disponible en todas las sucursales.
type MenuItem struct {
	ID          int64
	Name        string
	Description pgtype.Text
	Price       decimal.Decimal
	ImageURL    pgtype.Text
	Category    pgtype.Text // hot, iced, specialty...
	IsAvailable bool
	BranchID    pgtype.Int8
	Ingredients []*Ingredient // en orden de inserción
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ingredient insumo de un MenuItem (borrado en cascada con su ítem).
type Ingredient struct {
	ID         int64
	MenuItemID int64
	Name       string
	Quantity   float64
	Unit       string // g, ml, shots, pumps
	ImageURL   pgtype.Text
}
