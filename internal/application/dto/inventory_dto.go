package dto

import (
	"fmt"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

// InventoryCreate body para POST /api/inventory.
// MinimumThreshold se usa para detectar stock bajo (current_stock <= minimum_threshold).
type InventoryCreate struct {
	ItemName         string           `json:"item_name" validate:"present"`
	CurrentStock     float64          `json:"current_stock" validate:"present"`
	Unit             string           `json:"unit" validate:"present"` // g, ml, pieces...
	MinimumThreshold *float64         `json:"minimum_threshold"`
	CostPerUnit      *decimal.Decimal `json:"cost_per_unit"`
	Supplier         *string          `json:"supplier"`
	BranchID         int64            `json:"branch_id" validate:"present"`
}

// SetDefaults umbral mínimo 0.
func (i *InventoryCreate) SetDefaults() {
	zero := 0.0
	i.MinimumThreshold = &zero
}

// InventoryUpdate body para PATCH /api/inventory/:id.
type InventoryUpdate struct {
	ItemName         nullable.Nullable[string]          `json:"item_name,omitempty"`
	CurrentStock     nullable.Nullable[float64]         `json:"current_stock,omitempty"`
	Unit             nullable.Nullable[string]          `json:"unit,omitempty"`
	MinimumThreshold nullable.Nullable[float64]         `json:"minimum_threshold,omitempty"`
	CostPerUnit      nullable.Nullable[decimal.Decimal] `json:"cost_per_unit,omitempty"`
	Supplier         nullable.Nullable[string]          `json:"supplier,omitempty"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID               int64            `json:"id" validate:"present"`
	ItemName         string           `json:"item_name" validate:"present"`
	CurrentStock     float64          `json:"current_stock" validate:"present"`
	Unit             string           `json:"unit" validate:"present"`
	MinimumThreshold *float64         `json:"minimum_threshold"`
	CostPerUnit      *decimal.Decimal `json:"cost_per_unit"`
	Supplier         *string          `json:"supplier"`
	BranchID         int64            `json:"branch_id" validate:"present"`
	LastRestocked    *time.Time       `json:"last_restocked"`
	CreatedAt        time.Time        `json:"created_at" validate:"present"`
	UpdatedAt        time.Time        `json:"updated_at" validate:"present"`
}

// SetDefaults igual que InventoryCreate.
func (i *InventoryResponse) SetDefaults() {
	zero := 0.0
	i.MinimumThreshold = &zero
}

// ── Movimientos de stock ──────────────────────────────────────────────────────

// MovementType tipo de movimiento de stock. Conjunto cerrado.
type MovementType string

const (
	MovementRestock    MovementType = "restock"
	MovementUsage      MovementType = "usage"
	MovementWaste      MovementType = "waste"
	MovementAdjustment MovementType = "adjustment"
)

// IsValid indica si el tipo pertenece al conjunto cerrado.
func (m MovementType) IsValid() bool {
	switch m {
	case MovementRestock, MovementUsage, MovementWaste, MovementAdjustment:
		return true
	}
	return false
}

// ParseMovementType convierte un string de la API en MovementType.
func ParseMovementType(s string) (MovementType, error) {
	m := MovementType(s)
	if !m.IsValid() {
		return "", fmt.Errorf("tipo de movimiento desconocido %q", s)
	}
	return m, nil
}

// StockMovementCreate body para registrar un movimiento sobre un registro de inventario.
type StockMovementCreate struct {
	InventoryID  int64        `json:"inventory_id" validate:"present"`
	MovementType MovementType `json:"movement_type" validate:"present,movement_type"`
	Quantity     float64      `json:"quantity" validate:"present"`
	Unit         string       `json:"unit" validate:"present"`
	Reason       *string      `json:"reason"`
}

// StockMovementResponse salida de un movimiento registrado.
type StockMovementResponse struct {
	ID           int64        `json:"id" validate:"present"`
	InventoryID  int64        `json:"inventory_id" validate:"present"`
	MovementType MovementType `json:"movement_type" validate:"present,movement_type"`
	Quantity     float64      `json:"quantity" validate:"present"`
	Unit         string       `json:"unit" validate:"present"`
	Reason       *string      `json:"reason"`
	CreatedAt    time.Time    `json:"created_at" validate:"present"`
	CreatedBy    *int64       `json:"created_by"`
}
