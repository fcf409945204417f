package repository

import "github.com/tiservices/backoffice-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para artículos de inventario.
// Las escrituras de cantidad siempre ocurren dentro de la transacción que
// registra el movimiento conciliado (ver inventory.TxRunner).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// escrituras concurrentes sobre el mismo artículo.
	GetForUpdate(id string) (*entity.Item, error)
	// Update escribe el registro completo verificando la versión leída;
	// retorna domain.ErrConcurrentModification si la fila cambió.
	Update(item *entity.Item, expectedVersion int) error
	ListByAlmacen(almacen string, limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}
