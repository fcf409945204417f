package repository

import "github.com/tiservices/backoffice-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List(limit, offset int) ([]*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	Delete(id string) error
}
