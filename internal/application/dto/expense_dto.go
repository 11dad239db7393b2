package dto

import (
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

// ExpenseCategoryCreate entrada para crear una categoría de gasto.
type ExpenseCategoryCreate struct {
	Name        string  `json:"name" validate:"present"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

// SetDefaults categoría activa por defecto.
func (e *ExpenseCategoryCreate) SetDefaults() {
	e.IsActive = true
}

// ExpenseCategoryResponse salida de una categoría de gasto.
type ExpenseCategoryResponse struct {
	ID          int64     `json:"id" validate:"present"`
	Name        string    `json:"name" validate:"present"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at" validate:"present"`
}

// SetDefaults igual que ExpenseCategoryCreate.
func (e *ExpenseCategoryResponse) SetDefaults() {
	e.IsActive = true
}

// DailyExpenseCreate body para POST /api/expenses.
// TotalAmount lo envía el cliente y no se recalcula con Quantity * UnitCost.
// ExpenseDate nil = el colaborador aplica la fecha de registro.
type DailyExpenseCreate struct {
	Category      string          `json:"category" validate:"present"`
	ItemName      string          `json:"item_name" validate:"present"`
	Description   *string         `json:"description"`
	Quantity      *float64        `json:"quantity"`
	Unit          *string         `json:"unit"`
	UnitCost      decimal.Decimal `json:"unit_cost" validate:"present"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"present"`
	ExpenseDate   *time.Time      `json:"expense_date"`
	ReceiptNumber *string         `json:"receipt_number"`
	Vendor        *string         `json:"vendor"`
	BranchID      int64           `json:"branch_id" validate:"present"`
}

// DailyExpenseUpdate body para PUT /api/expenses/:id (tri-estado, branch_id no editable).
type DailyExpenseUpdate struct {
	Category      nullable.Nullable[string]          `json:"category,omitempty"`
	ItemName      nullable.Nullable[string]          `json:"item_name,omitempty"`
	Description   nullable.Nullable[string]          `json:"description,omitempty"`
	Quantity      nullable.Nullable[float64]         `json:"quantity,omitempty"`
	Unit          nullable.Nullable[string]          `json:"unit,omitempty"`
	UnitCost      nullable.Nullable[decimal.Decimal] `json:"unit_cost,omitempty"`
	TotalAmount   nullable.Nullable[decimal.Decimal] `json:"total_amount,omitempty"`
	ExpenseDate   nullable.Nullable[time.Time]       `json:"expense_date,omitempty"`
	ReceiptNumber nullable.Nullable[string]          `json:"receipt_number,omitempty"`
	Vendor        nullable.Nullable[string]          `json:"vendor,omitempty"`
}

// DailyExpenseResponse salida de un gasto. CreatedBy lo asigna el servidor.
type DailyExpenseResponse struct {
	ID            int64           `json:"id" validate:"present"`
	Category      string          `json:"category" validate:"present"`
	ItemName      string          `json:"item_name" validate:"present"`
	Description   *string         `json:"description"`
	Quantity      *float64        `json:"quantity"`
	Unit          *string         `json:"unit"`
	UnitCost      decimal.Decimal `json:"unit_cost" validate:"present"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"present"`
	ExpenseDate   *time.Time      `json:"expense_date"`
	ReceiptNumber *string         `json:"receipt_number"`
	Vendor        *string         `json:"vendor"`
	BranchID      int64           `json:"branch_id" validate:"present"`
	CreatedBy     int64           `json:"created_by" validate:"present"`
	CreatedAt     time.Time       `json:"created_at" validate:"present"`
}

// QuickExpenseCreate body para POST /api/expenses/quick-add: solo artículo, cantidad y unidad.
// El costo y la categoría los resuelve el colaborador a partir del inventario.
type QuickExpenseCreate struct {
	ItemName    string     `json:"item_name" validate:"present"`
	Quantity    float64    `json:"quantity" validate:"present"`
	Unit        string     `json:"unit" validate:"present"`
	BranchID    int64      `json:"branch_id" validate:"present"`
	ExpenseDate *time.Time `json:"expense_date"`
}

// ── Resumen de gastos ─────────────────────────────────────────────────────────

// ExpenseSummaryItem línea individual dentro de una categoría del resumen.
type ExpenseSummaryItem struct {
	ItemName string          `json:"item_name" validate:"present"`
	Amount   decimal.Decimal `json:"amount" validate:"present"`
	Quantity *float64        `json:"quantity"`
	Unit     *string         `json:"unit"`
}

// ExpenseCategoryBreakdown total de una categoría en el día.
type ExpenseCategoryBreakdown struct {
	Category    string               `json:"category" validate:"present"`
	TotalAmount decimal.Decimal      `json:"total_amount" validate:"present"`
	ItemCount   int                  `json:"item_count" validate:"present"`
	Items       []ExpenseSummaryItem `json:"items" validate:"dive"`
}

// ExpenseSummary respuesta de GET /api/expenses/summary.
type ExpenseSummary struct {
	Date              string                     `json:"date" validate:"present"` // YYYY-MM-DD
	BranchID          *int64                     `json:"branch_id"`
	TotalExpenses     decimal.Decimal            `json:"total_expenses" validate:"present"`
	ExpenseCount      int                        `json:"expense_count" validate:"present"`
	CategoryBreakdown []ExpenseCategoryBreakdown `json:"category_breakdown" validate:"present,dive"`
}
