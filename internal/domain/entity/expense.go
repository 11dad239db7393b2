package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DailyExpense gasto registrado en una sucursal.
// TotalAmount es el valor informado por el usuario, no Quantity * UnitCost.
type DailyExpense struct {
	ID            int64
	BranchID      int64
	CategoryID    pgtype.Int8 // FK interna a expense_categories; la API expone Category por nombre
	Category      string
	ItemName      string
	Description   pgtype.Text
	Quantity      pgtype.Float8
	Unit          pgtype.Text
	UnitCost      decimal.Decimal
	TotalAmount   decimal.Decimal
	ExpenseDate   pgtype.Timestamptz
	ReceiptNumber pgtype.Text
	Vendor        pgtype.Text
	CreatedBy     int64
	CreatedAt     time.Time
}
