package dto

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// BranchCreate entrada para crear una sucursal.
type BranchCreate struct {
	Name     string  `json:"name" validate:"present"`
	Location *string `json:"location"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	IsActive bool    `json:"is_active"`
}

// SetDefaults una sucursal nueva está activa.
func (b *BranchCreate) SetDefaults() {
	b.IsActive = true
}

// BranchUpdate entrada para actualizar una sucursal (campos tri-estado).
type BranchUpdate struct {
	Name     nullable.Nullable[string] `json:"name,omitempty"`
	Location nullable.Nullable[string] `json:"location,omitempty"`
	Address  nullable.Nullable[string] `json:"address,omitempty"`
	Phone    nullable.Nullable[string] `json:"phone,omitempty"`
	Email    nullable.Nullable[string] `json:"email,omitempty"`
	IsActive nullable.Nullable[bool]   `json:"is_active,omitempty"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        int64     `json:"id" validate:"present"`
	Name      string    `json:"name" validate:"present"`
	Location  *string   `json:"location"`
	Address   *string   `json:"address"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at" validate:"present"`
	UpdatedAt time.Time `json:"updated_at" validate:"present"`
}

// SetDefaults igual que BranchCreate.
func (b *BranchResponse) SetDefaults() {
	b.IsActive = true
}
