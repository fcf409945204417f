package repository

import "github.com/tiservices/backoffice-api/internal/domain/entity"

// HerramientaRepository define el puerto de persistencia para herramientas.
type HerramientaRepository interface {
	Create(herramienta *entity.Herramienta) error
	GetByID(id string) (*entity.Herramienta, error)
	GetBySerialNumber(serial string) (*entity.Herramienta, error)
	List(limit, offset int) ([]*entity.Herramienta, error)
	ListByColaborador(colaboradorID string) ([]*entity.Herramienta, error)
	Update(herramienta *entity.Herramienta) error
	Delete(id string) error
}
