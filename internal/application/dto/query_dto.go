package dto

// DefaultListLimit tamaño de página por defecto de los listados.
const DefaultListLimit = 100

// ExpenseListQuery query de GET /api/expenses. Date en formato YYYY-MM-DD; vacío = sin filtro.
// Para un worker la sucursal la fija el colaborador y BranchID se ignora.
type ExpenseListQuery struct {
	BranchID *int64  `json:"branch_id"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Category *string `json:"category"`
	Skip     int     `json:"skip" validate:"min=0"`
	Limit    int     `json:"limit" validate:"min=1"`
}

// SetDefaults primera página de 100.
func (q *ExpenseListQuery) SetDefaults() {
	q.Limit = DefaultListLimit
}

// MenuListQuery query de GET /api/menu. Por defecto solo ítems disponibles.
type MenuListQuery struct {
	BranchID      *int64  `json:"branch_id"`
	Category      *string `json:"category"`
	AvailableOnly bool    `json:"available_only"`
	Skip          int     `json:"skip" validate:"min=0"`
	Limit         int     `json:"limit" validate:"min=1"`
}

// SetDefaults disponibles y primera página de 100.
func (q *MenuListQuery) SetDefaults() {
	q.AvailableOnly = true
	q.Limit = DefaultListLimit
}

// OrderListQuery query de GET /api/orders.
type OrderListQuery struct {
	StatusFilter *string `json:"status_filter"`
	DateFilter   *string `json:"date_filter" validate:"omitempty,datetime=2006-01-02"`
	Skip         int     `json:"skip" validate:"min=0"`
	Limit        int     `json:"limit" validate:"min=1"`
}

// SetDefaults primera página de 100.
func (q *OrderListQuery) SetDefaults() {
	q.Limit = DefaultListLimit
}

// SaleListQuery query de GET /api/sales.
type SaleListQuery struct {
	BranchID   *int64  `json:"branch_id"`
	DateFilter *string `json:"date_filter" validate:"omitempty,datetime=2006-01-02"`
	ItemID     *int64  `json:"item_id"`
	Skip       int     `json:"skip" validate:"min=0"`
	Limit      int     `json:"limit" validate:"min=1"`
}

// SetDefaults primera página de 100.
func (q *SaleListQuery) SetDefaults() {
	q.Limit = DefaultListLimit
}

// InventoryListQuery query de GET /api/inventory.
// LowStockOnly = solo registros con current_stock <= minimum_threshold.
type InventoryListQuery struct {
	BranchID     *int64 `json:"branch_id"`
	LowStockOnly bool   `json:"low_stock_only"`
	Skip         int    `json:"skip" validate:"min=0"`
	Limit        int    `json:"limit" validate:"min=1"`
}

// SetDefaults primera página de 100.
func (q *InventoryListQuery) SetDefaults() {
	q.Limit = DefaultListLimit
}
