package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// ResponsivaGenerator puerto de salida para generar la carta responsiva en
// PDF de las herramientas asignadas a un colaborador.
type ResponsivaGenerator interface {
	Generate(colaborador *entity.Colaborador, herramientas []*entity.Herramienta) ([]byte, error)
}

// HerramientaUseCase casos de uso CRUD para herramientas y generación de la
// carta responsiva.
type HerramientaUseCase struct {
	repo            repository.HerramientaRepository
	colaboradorRepo repository.ColaboradorRepository
	responsiva      ResponsivaGenerator
}

// NewHerramientaUseCase construye el caso de uso.
func NewHerramientaUseCase(repo repository.HerramientaRepository, colaboradorRepo repository.ColaboradorRepository, responsiva ResponsivaGenerator) *HerramientaUseCase {
	return &HerramientaUseCase{repo: repo, colaboradorRepo: colaboradorRepo, responsiva: responsiva}
}

// Create da de alta una herramienta asignada a un colaborador existente.
// El número de serie debe ser único.
func (uc *HerramientaUseCase) Create(in dto.SaveHerramientaRequest) (*dto.HerramientaResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySerialNumber(in.SerialNumber)
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
	fecha := in.FechaAsignacion
	if fecha.IsZero() {
		fecha = now
	}
	herramienta := &entity.Herramienta{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Valor:           in.Valor,
		SerialNumber:    in.SerialNumber,
		ColaboradorID:   in.ColaboradorID,
		FechaAsignacion: fecha,
		Activo:          activo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(herramienta); err != nil {
		return nil, err
	}
	return toHerramientaResponse(herramienta), nil
}

// GetByID obtiene una herramienta por ID.
func (uc *HerramientaUseCase) GetByID(id string) (*dto.HerramientaResponse, error) {
	herramienta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if herramienta == nil {
		return nil, domain.ErrNotFound
	}
	return toHerramientaResponse(herramienta), nil
}

// Update actualiza una herramienta; permite reasignarla a otro colaborador.
func (uc *HerramientaUseCase) Update(id string, in dto.SaveHerramientaRequest) (*dto.HerramientaResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	herramienta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if herramienta == nil {
		return nil, domain.ErrNotFound
	}
	if in.SerialNumber != herramienta.SerialNumber {
		dup, err := uc.repo.GetBySerialNumber(in.SerialNumber)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if in.ColaboradorID != herramienta.ColaboradorID {
		herramienta.FechaAsignacion = time.Now()
	}
	if !in.FechaAsignacion.IsZero() {
		herramienta.FechaAsignacion = in.FechaAsignacion
	}
	herramienta.Nombre = in.Nombre
	herramienta.Marca = in.Marca
	herramienta.Modelo = in.Modelo
	herramienta.Valor = in.Valor
	herramienta.SerialNumber = in.SerialNumber
	herramienta.ColaboradorID = in.ColaboradorID
	if in.Activo != nil {
		herramienta.Activo = *in.Activo
	}
	herramienta.UpdatedAt = time.Now()
	if err := uc.repo.Update(herramienta); err != nil {
		return nil, err
	}
	return toHerramientaResponse(herramienta), nil
}

// List lista herramientas con paginación.
func (uc *HerramientaUseCase) List(page dto.PageRequest) (*dto.HerramientaListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HerramientaResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHerramientaResponse(h))
	}
	return &dto.HerramientaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByColaborador lista las herramientas asignadas a un colaborador.
func (uc *HerramientaUseCase) ListByColaborador(colaboradorID string) ([]dto.HerramientaResponse, error) {
	list, err := uc.repo.ListByColaborador(colaboradorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HerramientaResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHerramientaResponse(h))
	}
	return items, nil
}

// Responsiva genera el PDF de carta responsiva con las herramientas activas
// asignadas al colaborador.
func (uc *HerramientaUseCase) Responsiva(colaboradorID string) ([]byte, error) {
	colaborador, err := uc.colaboradorRepo.GetByID(colaboradorID)
	if err != nil {
		return nil, err
	}
	if colaborador == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByColaborador(colaboradorID)
	if err != nil {
		return nil, err
	}
	activas := make([]*entity.Herramienta, 0, len(list))
	for _, h := range list {
		if h.Activo {
			activas = append(activas, h)
		}
	}
	return uc.responsiva.Generate(colaborador, activas)
}

// Delete elimina una herramienta por ID.
func (uc *HerramientaUseCase) Delete(id string) error {
	herramienta, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if herramienta == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *HerramientaUseCase) validate(in dto.SaveHerramientaRequest) error {
	if in.Nombre == "" || in.SerialNumber == "" || in.ColaboradorID == "" {
		return domain.ErrInvalidInput
	}
	colaborador, err := uc.colaboradorRepo.GetByID(in.ColaboradorID)
	if err != nil {
		return err
	}
	if colaborador == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toHerramientaResponse(h *entity.Herramienta) *dto.HerramientaResponse {
	if h == nil {
		return nil
	}
	return &dto.HerramientaResponse{
		ID:              h.ID,
		Nombre:          h.Nombre,
		Marca:           h.Marca,
		Modelo:          h.Modelo,
		Valor:           h.Valor,
		SerialNumber:    h.SerialNumber,
		ColaboradorID:   h.ColaboradorID,
		FechaAsignacion: h.FechaAsignacion,
		Activo:          h.Activo,
	}
}
