package entity

import "time"

// Tipos de movimiento de inventario. Tag cerrado de dos valores: la dirección
// la lleva el tipo, nunca el signo de la cantidad.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// ItemSnapshot identidad denormalizada de un artículo al momento del movimiento.
type ItemSnapshot struct {
	Descripcion string
	Marca       string
	Modelo      string
}

// ItemRef referencia a un artículo en un movimiento: siempre lleva el ID y,
// resuelta en la consulta, la instantánea del artículo (del registro vivo si
// existe, o la denormalizada si el artículo fue borrado). Reemplaza el campo
// itemId "a veces string, a veces objeto poblado" del sistema anterior.
type ItemRef struct {
	ID       string
	Snapshot *ItemSnapshot
}

// Populated indica si la referencia trae instantánea resuelta.
func (r ItemRef) Populated() bool { return r.Snapshot != nil }

// Movement es un hecho inmutable del libro de movimientos: append-only,
// nunca se actualiza ni se borra. Cantidad siempre > 0; Fecha la asigna el
// libro al registrar, nunca se confía en la del caller.
type Movement struct {
	ID         string
	Item       ItemRef
	Tipo       string // entrada | salida
	Cantidad   int    // > 0
	Fecha      time.Time
	Comentario string
	Usuario    string
	Almacen    string // interior | exterior
}
