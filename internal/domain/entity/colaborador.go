package entity

import "time"

// Colaborador empleado de la empresa.
// NumeroEmpleado lo asigna el servidor desde una secuencia; NSS es único.
type Colaborador struct {
	ID             string
	NumeroEmpleado int
	Nombre         string
	NSS            string // Número de Seguro Social
	Puesto         string
	FechaAltaIMSS  time.Time
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
