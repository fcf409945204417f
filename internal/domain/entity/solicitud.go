package entity

import "time"

// Estados de una solicitud de movimiento de inventario.
const (
	SolicitudPendiente = "pendiente"
	SolicitudAprobada  = "aprobada"
	SolicitudRechazada = "rechazada"
)

// Solicitud petición de entrada o salida de inventario que un administrador
// aprueba o rechaza. La aprobación aplica el cambio de cantidad y registra el
// movimiento por el mismo flujo de conciliación que una edición directa.
type Solicitud struct {
	ID             string
	Almacen        string // interior | exterior
	ItemID         string
	Tipo           string // entrada | salida
	Cantidad       int    // > 0
	NumerosSerie   []string
	Motivo         string
	Solicitante    string
	FechaSolicitud time.Time
	Estado         string // pendiente | aprobada | rechazada
	Aprobador      string
	FechaProceso   *time.Time
	MotivoRechazo  string
}

// Pendiente indica si la solicitud sigue sin procesarse.
func (s *Solicitud) Pendiente() bool { return s.Estado == SolicitudPendiente }
