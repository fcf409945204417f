package dto

// PersonaDTO persona de contacto de un cliente.
type PersonaDTO struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
}

// SaveClienteRequest body para POST /api/clientes y PUT /api/clientes/:id.
type SaveClienteRequest struct {
	Compania  string       `json:"compania"`
	Direccion string       `json:"direccion"`
	Personas  []PersonaDTO `json:"personas"`
}

// ClienteResponse representación de un cliente.
type ClienteResponse struct {
	ID        string       `json:"_id"`
	Compania  string       `json:"compania"`
	Direccion string       `json:"direccion"`
	Personas  []PersonaDTO `json:"personas"`
}

// ClienteListResponse listado paginado de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
