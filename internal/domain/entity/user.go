package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Roles válidos para Admin.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// Admin representa un usuario del back-office (admin o worker).
// Un worker queda asignado a una sola sucursal; un admin puede no tener sucursal.
type Admin struct {
	ID           int64
	Username     string
	Email        string
	FullName     pgtype.Text
	PasswordHash string // bcrypt hash, nunca sale de la capa de persistencia
	Role         string // admin, worker
	BranchID     pgtype.Int8
	IsActive     bool
	IsSuperuser  bool
	CreatedAt    time.Time
	LastLogin    pgtype.Timestamptz
	Branch       *Branch // cargada solo si la consulta hace join
}
