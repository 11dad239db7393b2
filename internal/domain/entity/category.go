package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ExpenseCategory clasificación de gastos (Dairy, Utilities, Other...).
type ExpenseCategory struct {
	ID          int64
	Name        string
	Description pgtype.Text
	IsActive    bool
	CreatedAt   time.Time
}
