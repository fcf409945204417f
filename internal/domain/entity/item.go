package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas para artículos.
const (
	UnidadPieza = "PZA"
	UnidadMetro = "MTS"
)

// Almacenes de inventario. El exterior era una variante aparte en el sistema
// anterior; aquí ambos pasan por el mismo flujo de conciliación.
const (
	AlmacenInterior = "interior"
	AlmacenExterior = "exterior"
)

// Item representa un artículo del inventario.
// Cantidad solo cambia a través del flujo de conciliación, que registra el
// movimiento derivado en la misma transacción. Version implementa bloqueo
// optimista: cada escritura verifica la versión leída por el cliente.
type Item struct {
	ID             string
	Descripcion    string
	Marca          string
	Modelo         string
	Proveedor      string
	Unidad         string          // PZA | MTS
	PrecioUnitario decimal.Decimal // no negativo
	Cantidad       int             // >= 0
	NumerosSerie   []string
	Categorias     []string
	Almacen        string // interior | exterior
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Snapshot captura la identidad denormalizada del artículo para movimientos
// que deben sobrevivir a su borrado.
func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		Descripcion: i.Descripcion,
		Marca:       i.Marca,
		Modelo:      i.Modelo,
	}
}
