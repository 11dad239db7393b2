package dto

import (
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

// ── Ingredientes ──────────────────────────────────────────────────────────────

// IngredientCreate ingrediente de un ítem de menú. menu_item_id lo asigna el servidor.
type IngredientCreate struct {
	Name     string  `json:"name" validate:"present"`
	Quantity float64 `json:"quantity" validate:"present"`
	Unit     string  `json:"unit" validate:"present"` // g, ml, shots, pumps
	ImageURL *string `json:"image_url"`
}

// IngredientUpdate body para PATCH /api/ingredients/:id.
type IngredientUpdate struct {
	Name     nullable.Nullable[string]  `json:"name,omitempty"`
	Quantity nullable.Nullable[float64] `json:"quantity,omitempty"`
	Unit     nullable.Nullable[string]  `json:"unit,omitempty"`
	ImageURL nullable.Nullable[string]  `json:"image_url,omitempty"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID         int64   `json:"id" validate:"present"`
	MenuItemID int64   `json:"menu_item_id" validate:"present"`
	Name       string  `json:"name" validate:"present"`
	Quantity   float64 `json:"quantity" validate:"present"`
	Unit       string  `json:"unit" validate:"present"`
	ImageURL   *string `json:"image_url"`
}

// ── Menú ──────────────────────────────────────────────────────────────────────

// MenuItemCreate body para POST /api/menu.
// BranchID nil = disponible en todas las sucursales.
type MenuItemCreate struct {
	Name        string             `json:"name" validate:"present"`
	Price       decimal.Decimal    `json:"price" validate:"present"`
	Description *string            `json:"description"`
	ImageURL    *string            `json:"image_url"`
	Category    *string            `json:"category"` // hot, iced, specialty...
	IsAvailable bool               `json:"is_available"`
	BranchID    *int64             `json:"branch_id"`
	Ingredients []IngredientCreate `json:"ingredients" validate:"dive"`
}

// SetDefaults disponible y sin ingredientes.
func (m *MenuItemCreate) SetDefaults() {
	m.IsAvailable = true
	m.Ingredients = []IngredientCreate{}
}

// MenuItemUpdate body para PUT /api/menu/:id.
// Si Ingredients viene especificado reemplaza la lista completa (no se fusiona).
type MenuItemUpdate struct {
	Name        nullable.Nullable[string]             `json:"name,omitempty"`
	Price       nullable.Nullable[decimal.Decimal]    `json:"price,omitempty"`
	Description nullable.Nullable[string]             `json:"description,omitempty"`
	ImageURL    nullable.Nullable[string]             `json:"image_url,omitempty"`
	Category    nullable.Nullable[string]             `json:"category,omitempty"`
	IsAvailable nullable.Nullable[bool]               `json:"is_available,omitempty"`
	BranchID    nullable.Nullable[int64]              `json:"branch_id,omitempty"`
	Ingredients nullable.Nullable[[]IngredientCreate] `json:"ingredients,omitempty" validate:"omitnil,dive"`
}

// MenuItemResponse salida de un ítem de menú con sus ingredientes.
type MenuItemResponse struct {
	ID          int64                `json:"id" validate:"present"`
	Name        string               `json:"name" validate:"present"`
	Price       decimal.Decimal      `json:"price" validate:"present"`
	Description *string              `json:"description"`
	ImageURL    *string              `json:"image_url"`
	Category    *string              `json:"category"`
	IsAvailable bool                 `json:"is_available"`
	BranchID    *int64               `json:"branch_id"`
	Ingredients []IngredientResponse `json:"ingredients" validate:"dive"`
	CreatedAt   time.Time            `json:"created_at" validate:"present"`
	UpdatedAt   time.Time            `json:"updated_at" validate:"present"`
}

// SetDefaults igual que MenuItemCreate.
func (m *MenuItemResponse) SetDefaults() {
	m.IsAvailable = true
	m.Ingredients = []IngredientResponse{}
}
