package mapper

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// TokenTypeBearer tipo de token devuelto en login.
const TokenTypeBearer = "bearer"

// ToUserResponse proyecta un Admin a la salida resumida. PasswordHash nunca se copia.
// Un rol fuera de admin/worker en el registro es un error, no una salida válida.
func ToUserResponse(a *entity.Admin) (*dto.UserResponse, error) {
	if a == nil {
		return nil, nil
	}
	role, err := adminRole(a)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		FullName:    a.FullName.String,
		Role:        role,
		BranchID:    int8Ptr(a.BranchID),
		IsActive:    a.IsActive,
		IsSuperuser: a.IsSuperuser,
		CreatedAt:   a.CreatedAt,
	}, nil
}

// ToAdminResponse proyecta un Admin (con su sucursal si viene cargada).
func ToAdminResponse(a *entity.Admin) (*dto.AdminResponse, error) {
	if a == nil {
		return nil, nil
	}
	role, err := adminRole(a)
	if err != nil {
		return nil, err
	}
	return &dto.AdminResponse{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		FullName:    textPtr(a.FullName),
		Role:        role,
		BranchID:    int8Ptr(a.BranchID),
		IsActive:    a.IsActive,
		IsSuperuser: a.IsSuperuser,
		CreatedAt:   a.CreatedAt,
		LastLogin:   timePtr(a.LastLogin),
		Branch:      ToBranchResponse(a.Branch),
	}, nil
}

// ToToken arma la respuesta de login.
func ToToken(accessToken string, a *entity.Admin) (*dto.Token, error) {
	if a == nil {
		return nil, nil
	}
	user, err := ToAdminResponse(a)
	if err != nil {
		return nil, err
	}
	return &dto.Token{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		User:        *user,
	}, nil
}

func adminRole(a *entity.Admin) (dto.UserRole, error) {
	role, err := dto.ParseUserRole(a.Role)
	if err != nil {
		return "", fmt.Errorf("usuario %d: %w", a.ID, err)
	}
	return role, nil
}

// ToTokenData extrae el username (claim sub) de un JWT ya verificado.
func ToTokenData(claims jwt.Claims) (dto.TokenData, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return dto.TokenData{}, fmt.Errorf("leer claim sub: %w", err)
	}
	if sub == "" {
		return dto.TokenData{}, nil
	}
	return dto.TokenData{Username: &sub}, nil
}
