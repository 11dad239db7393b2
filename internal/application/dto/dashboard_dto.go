package dto

import "github.com/shopspring/decimal"

// DashboardSummary respuesta de GET /api/dashboard.
// Agregado bajo demanda: no tiene identidad ni se persiste.
type DashboardSummary struct {
	BranchID      *int64          `json:"branch_id"` // nil = todas las sucursales
	TodaySales    int             `json:"today_sales" validate:"present"`
	TodayRevenue  decimal.Decimal `json:"today_revenue" validate:"present"`
	TodayExpenses decimal.Decimal `json:"today_expenses" validate:"present"`
	NetProfit     decimal.Decimal `json:"net_profit" validate:"present"`
	PendingOrders int             `json:"pending_orders" validate:"present"`
	LowStockItems int             `json:"low_stock_items" validate:"present"`

	TopSellingItems  []TopSellingItem   `json:"top_selling_items" validate:"present,dive"`
	RecentOrders     []OrderResponse    `json:"recent_orders" validate:"present,dive"`
	ExpenseBreakdown []ExpenseBreakdown `json:"expense_breakdown" validate:"present,dive"`
}

// TopSellingItem ítem más vendido de los últimos días.
type TopSellingItem struct {
	Name         string          `json:"name" validate:"present"`
	QuantitySold int             `json:"quantity_sold" validate:"present"`
	Revenue      decimal.Decimal `json:"revenue" validate:"present"`
}

// ExpenseBreakdown total de gastos del día por categoría.
type ExpenseBreakdown struct {
	Category string          `json:"category" validate:"present"`
	Amount   decimal.Decimal `json:"amount" validate:"present"`
}
