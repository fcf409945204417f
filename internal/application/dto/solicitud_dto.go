package dto

import "time"

// CreateSolicitudRequest body para POST /api/solicitudes.
type CreateSolicitudRequest struct {
	ItemID       string   `json:"itemId"`
	Tipo         string   `json:"tipo"` // entrada | salida
	Cantidad     int      `json:"cantidad"`
	Motivo       string   `json:"motivoSolicitud"`
	NumerosSerie []string `json:"numerosSerie,omitempty"`
}

// RechazarSolicitudRequest body para POST /api/solicitudes/:id/rechazar.
type RechazarSolicitudRequest struct {
	MotivoRechazo string `json:"motivoRechazo"`
}

// SolicitudResponse solicitud de movimiento.
type SolicitudResponse struct {
	ID             string           `json:"_id"`
	ItemID         string           `json:"itemId"`
	Item           *ItemSnapshotDTO `json:"item,omitempty"`
	Tipo           string           `json:"tipo"`
	Cantidad       int              `json:"cantidad"`
	NumerosSerie   []string         `json:"numerosSerie,omitempty"`
	Motivo         string           `json:"motivoSolicitud"`
	Solicitante    string           `json:"solicitante,omitempty"`
	FechaSolicitud time.Time        `json:"fechaSolicitud"`
	Estado         string           `json:"estado"`
	Aprobador      string           `json:"aprobador,omitempty"`
	FechaProceso   *time.Time       `json:"fechaAprobacion,omitempty"`
	MotivoRechazo  string           `json:"motivoRechazo,omitempty"`
	Almacen        string           `json:"almacen"`
}

// SolicitudListResponse listado de solicitudes, más reciente primero.
type SolicitudListResponse struct {
	Items []SolicitudResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
