package repository

import "github.com/tiservices/backoffice-api/internal/domain/entity"

// ColaboradorRepository define el puerto de persistencia para colaboradores.
// NumeroEmpleado lo asigna la base con una secuencia al crear.
type ColaboradorRepository interface {
	Create(colaborador *entity.Colaborador) error
	GetByID(id string) (*entity.Colaborador, error)
	GetByNSS(nss string) (*entity.Colaborador, error)
	List(soloActivos bool, limit, offset int) ([]*entity.Colaborador, error)
	Update(colaborador *entity.Colaborador) error
	Delete(id string) error
}
