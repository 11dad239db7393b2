package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de exportación de un reporte diario.
const (
	ExportPending  = "pending"
	ExportExported = "exported"
	ExportFailed   = "failed"
)

// DailyReportResponse consolidado diario por sucursal. Lo genera el servidor; no hay shape de entrada.
type DailyReportResponse struct {
	ID             int64           `json:"id" validate:"present"`
	BranchID       int64           `json:"branch_id" validate:"present"`
	ReportDate     time.Time       `json:"report_date" validate:"present"`
	TotalSales     int             `json:"total_sales" validate:"present"`
	TotalRevenue   decimal.Decimal `json:"total_revenue" validate:"present"`
	TotalExpenses  decimal.Decimal `json:"total_expenses" validate:"present"`
	NetProfit      decimal.Decimal `json:"net_profit" validate:"present"`
	TopSellingItem *string         `json:"top_selling_item"`
	ExportStatus   string          `json:"export_status" validate:"present"`
	ExportedAt     *time.Time      `json:"exported_at"`
	CreatedAt      time.Time       `json:"created_at" validate:"present"`
}
