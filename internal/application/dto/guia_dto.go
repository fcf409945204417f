package dto

import "time"

// SaveGuiaRequest body para POST /api/guias y PUT /api/guias/:id.
type SaveGuiaRequest struct {
	NumeroGuia   string    `json:"numeroGuia"`
	Proveedor    string    `json:"proveedor"`
	Paqueteria   string    `json:"paqueteria"`
	FechaPedido  time.Time `json:"fechaPedido"`
	FechaLlegada time.Time `json:"fechaLlegada"`
	Proyectos    []string  `json:"proyectos"`
	Estado       string    `json:"estado"`
	Comentarios  string    `json:"comentarios,omitempty"`
}

// GuiaListResponse listado paginado de guías.
type GuiaListResponse struct {
	Items []GuiaResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// GuiaResponse representación de una guía.
type GuiaResponse struct {
	ID           string    `json:"_id"`
	NumeroGuia   string    `json:"numeroGuia"`
	Proveedor    string    `json:"proveedor"`
	Paqueteria   string    `json:"paqueteria"`
	FechaPedido  time.Time `json:"fechaPedido"`
	FechaLlegada time.Time `json:"fechaLlegada"`
	Proyectos    []string  `json:"proyectos"`
	Estado       string    `json:"estado"`
	Comentarios  string    `json:"comentarios,omitempty"`
}
