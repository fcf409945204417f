package inventory

import (
	"context"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del artículo y el
// asiento del movimiento conciliado sean una sola unidad atómica: o ambos
// quedan, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		solRepo repository.SolicitudRepository,
	) error) error
}

// Exporter genera el archivo descargable de un listado de movimientos.
// Lo implementa el adaptador de Excel.
type Exporter interface {
	Export(movs []*entity.Movement) ([]byte, error)
}
