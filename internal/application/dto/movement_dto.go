package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory-movements.
// La fecha del asiento la asigna el servidor; una `fecha` en el body se
// ignora para no romper el orden cronológico del libro.
type RegisterMovementRequest struct {
	ItemID     string `json:"itemId"`
	Tipo       string `json:"tipo"` // entrada | salida
	Cantidad   int    `json:"cantidad"`
	Comentario string `json:"comentario,omitempty"`
}

// ItemSnapshotDTO identidad mínima del artículo referido. Viene poblada
// cuando se pidió populate=1 (del artículo vivo, o de la copia denormalizada
// si ya fue borrado).
type ItemSnapshotDTO struct {
	Descripcion string `json:"descripcion"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
}

// MovementResponse asiento del libro de movimientos.
type MovementResponse struct {
	ID         string           `json:"_id"`
	ItemID     string           `json:"itemId"`
	Item       *ItemSnapshotDTO `json:"item,omitempty"`
	Tipo       string           `json:"tipo"`
	Cantidad   int              `json:"cantidad"`
	Fecha      time.Time        `json:"fecha"`
	Comentario string           `json:"comentario,omitempty"`
	Usuario    string           `json:"usuario,omitempty"`
	Almacen    string           `json:"almacen"`
}

// MovementListResponse listado de movimientos ordenado por fecha.
type MovementListResponse struct {
	Movimientos []MovementResponse `json:"movimientos"`
	Page        PageResponse       `json:"page"`
}

// ItemTotalDTO saldo neto por artículo (Σ entradas − Σ salidas).
type ItemTotalDTO struct {
	ItemID   string `json:"itemId"`
	Entradas int    `json:"entradas"`
	Salidas  int    `json:"salidas"`
	Neto     int    `json:"neto"`
}

// PeriodTotalDTO entradas y salidas acumuladas por día o semana ISO.
type PeriodTotalDTO struct {
	Periodo  string `json:"periodo"`
	Entradas int    `json:"entradas"`
	Salidas  int    `json:"salidas"`
}

// MovementSummaryResponse respuesta de GET /api/inventory-movements/resumen.
type MovementSummaryResponse struct {
	PorItem    []ItemTotalDTO   `json:"porItem"`
	PorDia     []PeriodTotalDTO `json:"porDia"`
	PorSemana  []PeriodTotalDTO `json:"porSemana"`
	TopSalidas []ItemTotalDTO   `json:"topSalidas"`
}
