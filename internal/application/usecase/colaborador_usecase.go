package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// ColaboradorUseCase casos de uso CRUD para colaboradores.
type ColaboradorUseCase struct {
	repo repository.ColaboradorRepository
}

// NewColaboradorUseCase construye el caso de uso.
func NewColaboradorUseCase(repo repository.ColaboradorRepository) *ColaboradorUseCase {
	return &ColaboradorUseCase{repo: repo}
}

// Create da de alta un colaborador. El número de empleado lo asigna la base
// al insertar; el NSS debe ser único.
func (uc *ColaboradorUseCase) Create(in dto.SaveColaboradorRequest) (*dto.ColaboradorResponse, error) {
	if in.Nombre == "" || in.NSS == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNSS(in.NSS)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	colaborador := &entity.Colaborador{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		NSS:           in.NSS,
		Puesto:        in.Puesto,
		FechaAltaIMSS: in.FechaAltaIMSS,
		Activo:        activo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(colaborador); err != nil {
		return nil, err
	}
	return toColaboradorResponse(colaborador), nil
}

// GetByID obtiene un colaborador por ID.
func (uc *ColaboradorUseCase) GetByID(id string) (*dto.ColaboradorResponse, error) {
	colaborador, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if colaborador == nil {
		return nil, domain.ErrNotFound
	}
	return toColaboradorResponse(colaborador), nil
}

// Update actualiza los datos del colaborador. El número de empleado y el NSS
// de otro colaborador no se pueden pisar.
func (uc *ColaboradorUseCase) Update(id string, in dto.SaveColaboradorRequest) (*dto.ColaboradorResponse, error) {
	if in.Nombre == "" || in.NSS == "" {
		return nil, domain.ErrInvalidInput
	}
	colaborador, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if colaborador == nil {
		return nil, domain.ErrNotFound
	}
	if in.NSS != colaborador.NSS {
		dup, err := uc.repo.GetByNSS(in.NSS)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}
	colaborador.Nombre = in.Nombre
	colaborador.NSS = in.NSS
	colaborador.Puesto = in.Puesto
	colaborador.FechaAltaIMSS = in.FechaAltaIMSS
	if in.Activo != nil {
		colaborador.Activo = *in.Activo
	}
	colaborador.UpdatedAt = time.Now()
	if err := uc.repo.Update(colaborador); err != nil {
		return nil, err
	}
	return toColaboradorResponse(colaborador), nil
}

// List lista colaboradores; soloActivos filtra las bajas.
func (uc *ColaboradorUseCase) List(soloActivos bool, page dto.PageRequest) (*dto.ColaboradorListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(soloActivos, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColaboradorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toColaboradorResponse(c))
	}
	return &dto.ColaboradorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un colaborador por ID.
func (uc *ColaboradorUseCase) Delete(id string) error {
	colaborador, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if colaborador == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toColaboradorResponse(c *entity.Colaborador) *dto.ColaboradorResponse {
	if c == nil {
		return nil
	}
	return &dto.ColaboradorResponse{
		ID:             c.ID,
		NumeroEmpleado: c.NumeroEmpleado,
		Nombre:         c.Nombre,
		NSS:            c.NSS,
		Puesto:         c.Puesto,
		FechaAltaIMSS:  c.FechaAltaIMSS,
		Activo:         c.Activo,
	}
}
