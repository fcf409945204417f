package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Herramienta equipo asignado a un colaborador. SerialNumber es único.
type Herramienta struct {
	ID              string
	Nombre          string
	Marca           string
	Modelo          string
	Valor           decimal.Decimal
	SerialNumber    string
	ColaboradorID   string
	FechaAsignacion time.Time
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
