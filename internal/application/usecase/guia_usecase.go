package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// GuiaUseCase casos de uso CRUD para guías de paquetería más el barrido que
// marca como atrasadas las pendientes con fecha de llegada vencida.
type GuiaUseCase struct {
	repo repository.GuiaRepository
	log  zerolog.Logger
}

// NewGuiaUseCase construye el caso de uso.
func NewGuiaUseCase(repo repository.GuiaRepository, log zerolog.Logger) *GuiaUseCase {
	return &GuiaUseCase{repo: repo, log: log}
}

// Create registra una guía nueva. Sin estado explícito, nace "en transito".
func (uc *GuiaUseCase) Create(in dto.SaveGuiaRequest) (*dto.GuiaResponse, error) {
	if err := validateGuia(in); err != nil {
		return nil, err
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.GuiaEnTransito
	}
	now := time.Now()
	guia := &entity.Guia{
		ID:           uuid.New().String(),
		NumeroGuia:   in.NumeroGuia,
		Proveedor:    in.Proveedor,
		Paqueteria:   in.Paqueteria,
		FechaPedido:  in.FechaPedido,
		FechaLlegada: in.FechaLlegada,
		Proyectos:    in.Proyectos,
		Estado:       estado,
		Comentarios:  in.Comentarios,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(guia); err != nil {
		return nil, err
	}
	return toGuiaResponse(guia), nil
}

// GetByID obtiene una guía por ID.
func (uc *GuiaUseCase) GetByID(id string) (*dto.GuiaResponse, error) {
	guia, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if guia == nil {
		return nil, domain.ErrNotFound
	}
	return toGuiaResponse(guia), nil
}

// Update actualiza una guía (incluye el cambio de estado manual, por ejemplo
// al marcarla entregada).
func (uc *GuiaUseCase) Update(id string, in dto.SaveGuiaRequest) (*dto.GuiaResponse, error) {
	if err := validateGuia(in); err != nil {
		return nil, err
	}
	guia, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if guia == nil {
		return nil, domain.ErrNotFound
	}
	guia.NumeroGuia = in.NumeroGuia
	guia.Proveedor = in.Proveedor
	guia.Paqueteria = in.Paqueteria
	guia.FechaPedido = in.FechaPedido
	guia.FechaLlegada = in.FechaLlegada
	guia.Proyectos = in.Proyectos
	if in.Estado != "" {
		guia.Estado = in.Estado
	}
	guia.Comentarios = in.Comentarios
	guia.UpdatedAt = time.Now()
	if err := uc.repo.Update(guia); err != nil {
		return nil, err
	}
	return toGuiaResponse(guia), nil
}

// List lista guías con paginación.
func (uc *GuiaUseCase) List(page dto.PageRequest) (*dto.GuiaListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GuiaResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGuiaResponse(g))
	}
	return &dto.GuiaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una guía por ID.
func (uc *GuiaUseCase) Delete(id string) error {
	guia, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if guia == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// SweepAtrasadas marca como atrasadas las guías pendientes cuya fecha de
// llegada quedó antes del corte. La llama el scheduler diario y también se
// puede disparar manualmente.
func (uc *GuiaUseCase) SweepAtrasadas(corte time.Time) (int, error) {
	n, err := uc.repo.MarkAtrasadas(corte)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.log.Info().Int("guias", n).Time("corte", corte).Msg("guías marcadas como atrasadas")
	}
	return n, nil
}

func validateGuia(in dto.SaveGuiaRequest) error {
	if in.NumeroGuia == "" || in.Proveedor == "" {
		return domain.ErrInvalidInput
	}
	switch in.Estado {
	case "", entity.GuiaEntregada, entity.GuiaNoEntregada, entity.GuiaEnTransito, entity.GuiaAtrasada:
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

func toGuiaResponse(g *entity.Guia) *dto.GuiaResponse {
	if g == nil {
		return nil
	}
	return &dto.GuiaResponse{
		ID:           g.ID,
		NumeroGuia:   g.NumeroGuia,
		Proveedor:    g.Proveedor,
		Paqueteria:   g.Paqueteria,
		FechaPedido:  g.FechaPedido,
		FechaLlegada: g.FechaLlegada,
		Proyectos:    g.Proyectos,
		Estado:       g.Estado,
		Comentarios:  g.Comentarios,
	}
}
