package dto

// ContactoProveedorDTO persona de contacto de un proveedor.
type ContactoProveedorDTO struct {
	Nombre    string `json:"nombre"`
	Puesto    string `json:"puesto"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Extension string `json:"extension,omitempty"`
}

// SaveProveedorRequest body para POST /api/proveedores y PUT /api/proveedores/:id.
type SaveProveedorRequest struct {
	Empresa   string                 `json:"empresa"`
	Direccion string                 `json:"direccion"`
	Telefono  string                 `json:"telefono"`
	Contactos []ContactoProveedorDTO `json:"contactos"`
}

// ProveedorResponse representación de un proveedor.
type ProveedorResponse struct {
	ID        string                 `json:"_id"`
	Empresa   string                 `json:"empresa"`
	Direccion string                 `json:"direccion"`
	Telefono  string                 `json:"telefono"`
	Contactos []ContactoProveedorDTO `json:"contactos"`
}

// ProveedorListResponse listado paginado de proveedores.
type ProveedorListResponse struct {
	Items []ProveedorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
