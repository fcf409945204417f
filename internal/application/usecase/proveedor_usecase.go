package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor con sus contactos.
func (uc *ProveedorUseCase) Create(in dto.SaveProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Empresa == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:        uuid.New().String(),
		Empresa:   in.Empresa,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Contactos: toContactos(in.Contactos),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	return toProveedorResponse(proveedor), nil
}

// Update reemplaza los datos del proveedor, contactos incluidos.
func (uc *ProveedorUseCase) Update(id string, in dto.SaveProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Empresa == "" {
		return nil, domain.ErrInvalidInput
	}
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	proveedor.Empresa = in.Empresa
	proveedor.Direccion = in.Direccion
	proveedor.Telefono = in.Telefono
	proveedor.Contactos = toContactos(in.Contactos)
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// List lista proveedores con paginación.
func (uc *ProveedorUseCase) List(page dto.PageRequest) (*dto.ProveedorListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un proveedor por ID.
func (uc *ProveedorUseCase) Delete(id string) error {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContactos(in []dto.ContactoProveedorDTO) []entity.ContactoProveedor {
	out := make([]entity.ContactoProveedor, 0, len(in))
	for _, c := range in {
		out = append(out, entity.ContactoProveedor{
			Nombre:    c.Nombre,
			Puesto:    c.Puesto,
			Correo:    c.Correo,
			Telefono:  c.Telefono,
			Extension: c.Extension,
		})
	}
	return out
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	contactos := make([]dto.ContactoProveedorDTO, 0, len(p.Contactos))
	for _, c := range p.Contactos {
		contactos = append(contactos, dto.ContactoProveedorDTO{
			Nombre:    c.Nombre,
			Puesto:    c.Puesto,
			Correo:    c.Correo,
			Telefono:  c.Telefono,
			Extension: c.Extension,
		})
	}
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Empresa:   p.Empresa,
		Direccion: p.Direccion,
		Telefono:  p.Telefono,
		Contactos: contactos,
	}
}
