package dto

import (
	"fmt"
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// UserRole rol de un usuario administrativo. Conjunto cerrado: admin | worker.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleWorker UserRole = "worker"
)

// IsValid indica si el rol pertenece al conjunto cerrado (comparación exacta, sensible a mayúsculas).
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWorker:
		return true
	}
	return false
}

// ParseUserRole convierte un string de la API en UserRole.
func ParseUserRole(s string) (UserRole, error) {
	r := UserRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, s)
	}
	return r, nil
}

// UserResponse salida resumida de un usuario (sin password).
type UserResponse struct {
	ID          int64     `json:"id" validate:"present"`
	Username    string    `json:"username" validate:"present"`
	Email       string    `json:"email" validate:"present"`
	FullName    string    `json:"full_name" validate:"present"`
	Role        UserRole  `json:"role" validate:"present,user_role"`
	BranchID    *int64    `json:"branch_id"`
	IsActive    bool      `json:"is_active" validate:"present"`
	IsSuperuser bool      `json:"is_superuser" validate:"present"`
	CreatedAt   time.Time `json:"created_at" validate:"present"`
}

// AdminCreate entrada para crear un usuario administrativo (password en texto, se hashea fuera de esta capa).
type AdminCreate struct {
	Username string   `json:"username" validate:"present"`
	Email    string   `json:"email" validate:"present,email"`
	FullName *string  `json:"full_name"`
	Role     UserRole `json:"role" validate:"user_role"`
	BranchID *int64   `json:"branch_id"`
	Password string   `json:"password" validate:"present"`
}

// SetDefaults rol worker si no se envía.
func (a *AdminCreate) SetDefaults() {
	a.Role = RoleWorker
}

// AdminUpdate entrada para actualizar un usuario. Campo ausente = sin cambio; null = limpiar.
type AdminUpdate struct {
	Username nullable.Nullable[string]   `json:"username,omitempty"`
	Email    nullable.Nullable[string]   `json:"email,omitempty" validate:"omitnil,email"`
	FullName nullable.Nullable[string]   `json:"full_name,omitempty"`
	Role     nullable.Nullable[UserRole] `json:"role,omitempty" validate:"omitnil,user_role"`
	BranchID nullable.Nullable[int64]    `json:"branch_id,omitempty"`
	IsActive nullable.Nullable[bool]     `json:"is_active,omitempty"`
}

// AdminLogin credenciales de login.
type AdminLogin struct {
	Username string `json:"username" validate:"present"`
	Password string `json:"password" validate:"present"`
}

// AdminResponse salida de un usuario administrativo (nunca incluye password_hash).
type AdminResponse struct {
	ID          int64           `json:"id" validate:"present"`
	Username    string          `json:"username" validate:"present"`
	Email       string          `json:"email" validate:"present,email"`
	FullName    *string         `json:"full_name"`
	Role        UserRole        `json:"role" validate:"user_role"`
	BranchID    *int64          `json:"branch_id"`
	IsActive    bool            `json:"is_active" validate:"present"`
	IsSuperuser bool            `json:"is_superuser" validate:"present"`
	CreatedAt   time.Time       `json:"created_at" validate:"present"`
	LastLogin   *time.Time      `json:"last_login"`
	Branch      *BranchResponse `json:"branch"`
}

// SetDefaults mismo default de rol que AdminCreate.
func (a *AdminResponse) SetDefaults() {
	a.Role = RoleWorker
}

// Token respuesta de login.
type Token struct {
	AccessToken string        `json:"access_token" validate:"present"`
	TokenType   string        `json:"token_type" validate:"present"`
	User        AdminResponse `json:"user" validate:"present"`
}

// TokenData datos extraídos del JWT.
type TokenData struct {
	Username *string `json:"username"`
}
