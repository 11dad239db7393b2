package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToBranchResponse proyecta una sucursal.
func ToBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  textPtr(b.Location),
		Address:   textPtr(b.Address),
		Phone:     textPtr(b.Phone),
		Email:     textPtr(b.Email),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
