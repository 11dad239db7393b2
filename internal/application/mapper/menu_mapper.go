package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToIngredientResponse proyecta un ingrediente.
func ToIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	if i == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:         i.ID,
		MenuItemID: i.MenuItemID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		ImageURL:   textPtr(i.ImageURL),
	}
}

// ToMenuItemResponse proyecta un ítem de menú con sus ingredientes en orden.
func ToMenuItemResponse(m *entity.MenuItem) *dto.MenuItemResponse {
	if m == nil {
		return nil
	}
	ingredients := make([]dto.IngredientResponse, 0, len(m.Ingredients))
	for _, i := range m.Ingredients {
		if i == nil {
			continue
		}
		ingredients = append(ingredients, *ToIngredientResponse(i))
	}
	return &dto.MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: textPtr(m.Description),
		ImageURL:    textPtr(m.ImageURL),
		Category:    textPtr(m.Category),
		IsAvailable: m.IsAvailable,
		BranchID:    int8Ptr(m.BranchID),
		Ingredients: ingredients,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
