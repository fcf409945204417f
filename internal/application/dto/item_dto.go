package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los nombres JSON conservan el contrato del API original (camelCase en
// español): precioUnitario, numerosSerie, categorias, etc.

// SaveItemRequest body para POST /api/inventory y PUT /api/inventory/:id.
// En actualizaciones, Version debe traer la versión leída por el cliente;
// un desfase produce 409 CONCURRENT_MODIFICATION.
type SaveItemRequest struct {
	Descripcion    string          `json:"descripcion"`
	Marca          string          `json:"marca"`
	Modelo         string          `json:"modelo"`
	Proveedor      string          `json:"proveedor"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Cantidad       int             `json:"cantidad"`
	NumerosSerie   []string        `json:"numerosSerie"`
	Categorias     []string        `json:"categorias"`
	Version        int             `json:"version,omitempty"`
}

// AltaBajaRequest body para POST /api/inventory/:id/alta y /baja.
type AltaBajaRequest struct {
	Cantidad   int    `json:"cantidad"`
	Comentario string `json:"comentario,omitempty"`
}

// ItemResponse representación de un artículo en respuestas.
type ItemResponse struct {
	ID             string          `json:"_id"`
	Descripcion    string          `json:"descripcion"`
	Marca          string          `json:"marca"`
	Modelo         string          `json:"modelo"`
	Proveedor      string          `json:"proveedor"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Cantidad       int             `json:"cantidad"`
	NumerosSerie   []string        `json:"numerosSerie"`
	Categorias     []string        `json:"categorias"`
	Almacen        string          `json:"almacen"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
