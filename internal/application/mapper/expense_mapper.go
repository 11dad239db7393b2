package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToExpenseCategoryResponse proyecta una categoría de gasto.
func ToExpenseCategoryResponse(c *entity.ExpenseCategory) *dto.ExpenseCategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.ExpenseCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: textPtr(c.Description),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToDailyExpenseResponse proyecta un gasto. CategoryID es interno y no se expone.
func ToDailyExpenseResponse(e *entity.DailyExpense) *dto.DailyExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.DailyExpenseResponse{
		ID:            e.ID,
		Category:      e.Category,
		ItemName:      e.ItemName,
		Description:   textPtr(e.Description),
		Quantity:      float8Ptr(e.Quantity),
		Unit:          textPtr(e.Unit),
		UnitCost:      e.UnitCost,
		TotalAmount:   e.TotalAmount,
		ExpenseDate:   timePtr(e.ExpenseDate),
		ReceiptNumber: textPtr(e.ReceiptNumber),
		Vendor:        textPtr(e.Vendor),
		BranchID:      e.BranchID,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
	}
}
