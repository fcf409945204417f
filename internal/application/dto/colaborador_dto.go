package dto

import "time"

// SaveColaboradorRequest body para POST /api/colaboradores y PUT /api/colaboradores/:id.
// NumeroEmpleado no se acepta del cliente: lo asigna el servidor al crear.
type SaveColaboradorRequest struct {
	Nombre        string    `json:"nombre"`
	NSS           string    `json:"nss"`
	Puesto        string    `json:"puesto"`
	FechaAltaIMSS time.Time `json:"fechaAltaIMSS"`
	Activo        *bool     `json:"activo,omitempty"`
}

// ColaboradorResponse representación de un colaborador.
type ColaboradorResponse struct {
	ID             string    `json:"_id"`
	NumeroEmpleado int       `json:"numeroEmpleado"`
	Nombre         string    `json:"nombre"`
	NSS            string    `json:"nss"`
	Puesto         string    `json:"puesto"`
	FechaAltaIMSS  time.Time `json:"fechaAltaIMSS"`
	Activo         bool      `json:"activo"`
}

// ColaboradorListResponse listado paginado de colaboradores.
type ColaboradorListResponse struct {
	Items []ColaboradorResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
