package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DailyReport consolidado diario de una sucursal, con seguimiento de exportación.
type DailyReport struct {
	ID             int64
	BranchID       int64
	ReportDate     time.Time
	TotalSales     int
	TotalRevenue   decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetProfit      decimal.Decimal
	TopSellingItem pgtype.Text
	ExportStatus   string // pending, exported, failed
	ExportedAt     pgtype.Timestamptz
	CreatedAt      time.Time
}
