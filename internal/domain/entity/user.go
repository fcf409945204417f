package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleAlmacen = "almacen"
	RoleCompras = "compras"
)

// User usuario del back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
