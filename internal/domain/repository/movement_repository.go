package repository

import (
	"time"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

// MovementFilter criterios de consulta del libro de movimientos.
// Desde/Hasta son inclusivos y opcionales; ItemID opcional. Populate resuelve
// la instantánea del artículo (del registro vivo o la denormalizada).
type MovementFilter struct {
	ItemID   string
	Almacen  string
	Desde    *time.Time
	Hasta    *time.Time
	Populate bool
	Limit    int
	Offset   int
}

// MovementRepository define el puerto del libro de movimientos.
// Append es la única mutación soportada: el libro nunca reescribe ni borra
// asientos por esta vía.
type MovementRepository interface {
	// Append persiste un movimiento. La fecha ya viene asignada por el caso
	// de uso (hora del servidor), nunca por el cliente.
	Append(mov *entity.Movement) error
	// List devuelve los movimientos que cumplen el filtro, ordenados por
	// fecha ascendente. Cada llamada relee; no hay cursor reanudable.
	List(filter MovementFilter) ([]*entity.Movement, error)
}
