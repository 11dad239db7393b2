package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToDailySaleResponse proyecta una venta diaria.
func ToDailySaleResponse(s *entity.DailySale) *dto.DailySaleResponse {
	if s == nil {
		return nil
	}
	return &dto.DailySaleResponse{
		ID:         s.ID,
		MenuItemID: s.MenuItemID,
		BranchID:   s.BranchID,
		Quantity:   s.Quantity,
		Revenue:    s.Revenue,
		SaleDate:   s.SaleDate,
		MenuItem:   ToMenuItemResponse(s.MenuItem),
	}
}
