package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente con sus personas de contacto.
func (uc *ClienteUseCase) Create(in dto.SaveClienteRequest) (*dto.ClienteResponse, error) {
	if in.Compania == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Compania:  in.Compania,
		Direccion: in.Direccion,
		Personas:  toPersonas(in.Personas),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// Update reemplaza los datos del cliente, personas incluidas.
func (uc *ClienteUseCase) Update(id string, in dto.SaveClienteRequest) (*dto.ClienteResponse, error) {
	if in.Compania == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cliente.Compania = in.Compania
	cliente.Direccion = in.Direccion
	cliente.Personas = toPersonas(in.Personas)
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes con paginación.
func (uc *ClienteUseCase) List(page dto.PageRequest) (*dto.ClienteListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un cliente por ID.
func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPersonas(in []dto.PersonaDTO) []entity.Persona {
	out := make([]entity.Persona, 0, len(in))
	for _, p := range in {
		out = append(out, entity.Persona{Nombre: p.Nombre, Correo: p.Correo, Telefono: p.Telefono})
	}
	return out
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	personas := make([]dto.PersonaDTO, 0, len(c.Personas))
	for _, p := range c.Personas {
		personas = append(personas, dto.PersonaDTO{Nombre: p.Nombre, Correo: p.Correo, Telefono: p.Telefono})
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Compania:  c.Compania,
		Direccion: c.Direccion,
		Personas:  personas,
	}
}
