package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToInventoryResponse proyecta un registro de inventario.
func ToInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:               i.ID,
		ItemName:         i.ItemName,
		CurrentStock:     i.CurrentStock,
		Unit:             i.Unit,
		MinimumThreshold: float8Ptr(i.MinimumThreshold),
		CostPerUnit:      decimalPtr(i.CostPerUnit),
		Supplier:         textPtr(i.Supplier),
		BranchID:         i.BranchID,
		LastRestocked:    timePtr(i.LastRestocked),
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// ToStockMovementResponse proyecta un movimiento de stock.
func ToStockMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMovementResponse{
		ID:           m.ID,
		InventoryID:  m.InventoryID,
		MovementType: dto.MovementType(m.MovementType),
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		Reason:       textPtr(m.Reason),
		CreatedAt:    m.CreatedAt,
		CreatedBy:    int8Ptr(m.CreatedBy),
	}
}
