package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToOrderItemResponse proyecta una línea de orden con el snapshot del ítem si viene cargado.
func ToOrderItemResponse(i *entity.OrderItem) *dto.OrderItemResponse {
	if i == nil {
		return nil
	}
	return &dto.OrderItemResponse{
		ID:                  i.ID,
		MenuItemID:          i.MenuItemID,
		Quantity:            i.Quantity,
		UnitPrice:           i.UnitPrice,
		TotalPrice:          i.TotalPrice,
		SpecialInstructions: textPtr(i.SpecialInstructions),
		MenuItem:            ToMenuItemResponse(i.MenuItem),
	}
}

// ToOrderResponse proyecta una orden.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		if it == nil {
			continue
		}
		items = append(items, *ToOrderItemResponse(it))
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		BranchID:      o.BranchID,
		CustomerName:  textPtr(o.CustomerName),
		CustomerEmail: textPtr(o.CustomerEmail),
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		OrderType:     o.OrderType,
		CreatedAt:     o.CreatedAt,
		CompletedAt:   timePtr(o.CompletedAt),
		Items:         items,
	}
}

// ToOrderResponses proyecta una lista de órdenes (ej. recent_orders del dashboard).
func ToOrderResponses(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		out = append(out, *ToOrderResponse(o))
	}
	return out
}
