package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveHerramientaRequest body para POST /api/herramientas y PUT /api/herramientas/:id.
type SaveHerramientaRequest struct {
	Nombre          string          `json:"nombre"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	Valor           decimal.Decimal `json:"valor"`
	SerialNumber    string          `json:"serialNumber"`
	ColaboradorID   string          `json:"colaboradorId"`
	FechaAsignacion time.Time       `json:"fechaAsignacion"`
	Activo          *bool           `json:"activo,omitempty"`
}

// HerramientaResponse representación de una herramienta.
type HerramientaResponse struct {
	ID              string          `json:"_id"`
	Nombre          string          `json:"nombre"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	Valor           decimal.Decimal `json:"valor"`
	SerialNumber    string          `json:"serialNumber"`
	ColaboradorID   string          `json:"colaboradorId"`
	FechaAsignacion time.Time       `json:"fechaAsignacion"`
	Activo          bool            `json:"activo"`
}

// HerramientaListResponse listado paginado de herramientas.
type HerramientaListResponse struct {
	Items []HerramientaResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
