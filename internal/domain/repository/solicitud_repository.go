package repository

import "github.com/tiservices/backoffice-api/internal/domain/entity"

// SolicitudFilter criterios de consulta de solicitudes. Todos opcionales.
type SolicitudFilter struct {
	Almacen     string
	Estado      string
	Solicitante string
	Limit       int
	Offset      int
}

// SolicitudRepository define el puerto de persistencia para solicitudes de
// movimiento.
type SolicitudRepository interface {
	Create(sol *entity.Solicitud) error
	GetByID(id string) (*entity.Solicitud, error)
	// GetForUpdate obtiene la solicitud bloqueando la fila, para que dos
	// administradores no procesen la misma solicitud a la vez.
	GetForUpdate(id string) (*entity.Solicitud, error)
	// List devuelve las solicitudes que cumplen el filtro, más reciente
	// primero.
	List(filter SolicitudFilter) ([]*entity.Solicitud, error)
	Update(sol *entity.Solicitud) error
}
