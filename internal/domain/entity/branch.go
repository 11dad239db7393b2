package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Branch representa una sucursal física del restaurante.
type Branch struct {
	ID        int64
	Name      string
	Location  pgtype.Text
	Address   pgtype.Text
	Phone     pgtype.Text
	Email     pgtype.Text
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
