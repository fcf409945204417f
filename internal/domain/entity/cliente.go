package entity

import "time"

// Persona contacto de un cliente.
type Persona struct {
	Nombre   string
	Correo   string
	Telefono string
}

// Cliente empresa cliente con sus personas de contacto.
type Cliente struct {
	ID        string
	Compania  string
	Direccion string
	Personas  []Persona
	CreatedAt time.Time
	UpdatedAt time.Time
}
