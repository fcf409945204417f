package entity

import "time"

// Estados de una guía de paquetería.
const (
	GuiaEntregada   = "entregado"
	GuiaNoEntregada = "no entregado"
	GuiaEnTransito  = "en transito"
	GuiaAtrasada    = "atrasado"
)

// Guia rastreo de un envío de proveedor.
// El barrido diario marca como "atrasado" las guías pendientes cuya
// FechaLlegada ya pasó.
type Guia struct {
	ID           string
	NumeroGuia   string
	Proveedor    string
	Paqueteria   string
	FechaPedido  time.Time
	FechaLlegada time.Time
	Proyectos    []string
	Estado       string
	Comentarios  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Pendiente indica si la guía sigue sin entregarse.
func (g *Guia) Pendiente() bool {
	return g.Estado == GuiaNoEntregada || g.Estado == GuiaEnTransito || g.Estado == GuiaAtrasada
}
