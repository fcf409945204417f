package entity

import "time"

// ContactoProveedor persona de contacto de un proveedor.
type ContactoProveedor struct {
	Nombre    string
	Puesto    string
	Correo    string
	Telefono  string
	Extension string
}

// Proveedor empresa proveedora.
type Proveedor struct {
	ID        string
	Empresa   string
	Direccion string
	Telefono  string
	Contactos []ContactoProveedor
	CreatedAt time.Time
	UpdatedAt time.Time
}
