package repository

import (
	"time"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

// GuiaRepository define el puerto de persistencia para guías de paquetería.
type GuiaRepository interface {
	Create(guia *entity.Guia) error
	GetByID(id string) (*entity.Guia, error)
	List(limit, offset int) ([]*entity.Guia, error)
	Update(guia *entity.Guia) error
	Delete(id string) error
	// MarkAtrasadas marca como atrasadas las guías pendientes cuya fecha de
	// llegada es anterior a corte. Devuelve cuántas cambiaron.
	MarkAtrasadas(corte time.Time) (int, error)
}
