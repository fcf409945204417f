package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	domaininv "github.com/tiservices/backoffice-api/internal/domain/inventory"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
	"github.com/tiservices/backoffice-api/internal/infrastructure/metrics"
)

var errSolicitudProcesada = fmt.Errorf("%w: la solicitud ya fue procesada", domain.ErrInvalidInput)

// SolicitudUseCase solicitudes de movimiento con aprobación. Cualquier usuario
// solicita una entrada o salida; un administrador la aprueba o rechaza. La
// aprobación aplica el cambio al artículo y registra el asiento en el libro
// por el mismo flujo de conciliación, en una sola transacción.
//
// El sistema anterior incrementaba la cantidad al aprobar sin registrar
// movimiento alguno; ese hueco en el libro se cierra aquí.
type SolicitudUseCase struct {
	txRunner TxRunner
	solRepo  repository.SolicitudRepository
	itemRepo repository.ItemRepository
}

// NewSolicitudUseCase construye el caso de uso.
func NewSolicitudUseCase(txRunner TxRunner, solRepo repository.SolicitudRepository, itemRepo repository.ItemRepository) *SolicitudUseCase {
	return &SolicitudUseCase{txRunner: txRunner, solRepo: solRepo, itemRepo: itemRepo}
}

// Crear registra una solicitud pendiente. Valida contra el estado actual del
// artículo (existencia, stock para salidas, números de serie), aunque la
// validación definitiva ocurre al aprobar: el stock puede cambiar mientras la
// solicitud espera.
func (uc *SolicitudUseCase) Crear(ctx context.Context, almacen string, in dto.CreateSolicitudRequest, solicitante string) (*dto.SolicitudResponse, error) {
	if in.ItemID == "" || in.Motivo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovementEntrada && in.Tipo != entity.MovementSalida {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Almacen != almacen {
		return nil, domain.ErrDanglingReference
	}
	if in.Tipo == entity.MovementSalida {
		if in.Cantidad > item.Cantidad {
			return nil, domain.ErrInsufficientStock
		}
		if !contieneSeries(item.NumerosSerie, in.NumerosSerie) {
			return nil, domain.ErrInvalidInput
		}
	}

	sol := &entity.Solicitud{
		ID:             uuid.New().String(),
		Almacen:        almacen,
		ItemID:         in.ItemID,
		Tipo:           in.Tipo,
		Cantidad:       in.Cantidad,
		NumerosSerie:   emptyIfNil(in.NumerosSerie),
		Motivo:         in.Motivo,
		Solicitante:    solicitante,
		FechaSolicitud: time.Now(),
		Estado:         entity.SolicitudPendiente,
	}
	if err := uc.solRepo.Create(sol); err != nil {
		return nil, err
	}
	return uc.toResponse(sol), nil
}

// Pendientes lista las solicitudes sin procesar de un almacén, más reciente
// primero. Vista del aprobador.
func (uc *SolicitudUseCase) Pendientes(almacen string, page dto.PageRequest) (*dto.SolicitudListResponse, error) {
	return uc.list(repository.SolicitudFilter{Almacen: almacen, Estado: entity.SolicitudPendiente}, page)
}

// Mias lista las solicitudes del solicitante en un almacén, en cualquier
// estado.
func (uc *SolicitudUseCase) Mias(almacen, solicitante string, page dto.PageRequest) (*dto.SolicitudListResponse, error) {
	return uc.list(repository.SolicitudFilter{Almacen: almacen, Solicitante: solicitante}, page)
}

func (uc *SolicitudUseCase) list(filter repository.SolicitudFilter, page dto.PageRequest) (*dto.SolicitudListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	sols, err := uc.solRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SolicitudResponse, 0, len(sols))
	for _, s := range sols {
		items = append(items, *uc.toResponse(s))
	}
	return &dto.SolicitudListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Aprobar aplica la solicitud: bloquea solicitud y artículo, ajusta la
// cantidad (y los números de serie si los lleva), registra el asiento en el
// libro y marca la solicitud como aprobada. Todo o nada.
func (uc *SolicitudUseCase) Aprobar(ctx context.Context, almacen, id, aprobador string) (*dto.SolicitudResponse, error) {
	var (
		sol  *entity.Solicitud
		tipo string
	)
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, solRepo repository.SolicitudRepository) error {
		var err error
		sol, err = uc.pendienteForUpdate(solRepo, almacen, id)
		if err != nil {
			return err
		}
		item, err := itemRepo.GetForUpdate(sol.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.Almacen != almacen {
			return domain.ErrDanglingReference
		}
		nueva, err := domaininv.Apply(item.Cantidad, sol.Tipo, sol.Cantidad)
		if err != nil {
			return err
		}
		if sol.Tipo == entity.MovementSalida && !contieneSeries(item.NumerosSerie, sol.NumerosSerie) {
			return domain.ErrInvalidInput
		}

		now := time.Now()
		expected := item.Version
		item.Cantidad = nueva
		item.UpdatedAt = now
		switch sol.Tipo {
		case entity.MovementEntrada:
			item.NumerosSerie = append(item.NumerosSerie, sol.NumerosSerie...)
		case entity.MovementSalida:
			item.NumerosSerie = sinSeries(item.NumerosSerie, sol.NumerosSerie)
		}
		if err := itemRepo.Update(item, expected); err != nil {
			return err
		}
		delta := &domaininv.Delta{Tipo: sol.Tipo, Cantidad: sol.Cantidad}
		if err := appendDelta(movRepo, item, delta, now, sol.Motivo, sol.Solicitante); err != nil {
			return err
		}

		sol.Estado = entity.SolicitudAprobada
		sol.Aprobador = aprobador
		sol.FechaProceso = &now
		tipo = sol.Tipo
		return solRepo.Update(sol)
	})
	if err != nil {
		return nil, err
	}
	metrics.MovimientosRegistrados.WithLabelValues(tipo, almacen).Inc()
	return uc.toResponse(sol), nil
}

// Rechazar marca la solicitud como rechazada con su motivo. No toca ni el
// artículo ni el libro.
func (uc *SolicitudUseCase) Rechazar(ctx context.Context, almacen, id, aprobador, motivoRechazo string) (*dto.SolicitudResponse, error) {
	var sol *entity.Solicitud
	err := uc.txRunner.Run(ctx, func(_ repository.ItemRepository, _ repository.MovementRepository, solRepo repository.SolicitudRepository) error {
		var err error
		sol, err = uc.pendienteForUpdate(solRepo, almacen, id)
		if err != nil {
			return err
		}
		now := time.Now()
		sol.Estado = entity.SolicitudRechazada
		sol.MotivoRechazo = motivoRechazo
		sol.Aprobador = aprobador
		sol.FechaProceso = &now
		return solRepo.Update(sol)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(sol), nil
}

func (uc *SolicitudUseCase) pendienteForUpdate(solRepo repository.SolicitudRepository, almacen, id string) (*entity.Solicitud, error) {
	sol, err := solRepo.GetForUpdate(id)
	if err != nil {
		return nil, err
	}
	if sol == nil || sol.Almacen != almacen {
		return nil, domain.ErrNotFound
	}
	if !sol.Pendiente() {
		return nil, errSolicitudProcesada
	}
	return sol, nil
}

// toResponse arma la respuesta resolviendo la instantánea del artículo vivo
// si todavía existe.
func (uc *SolicitudUseCase) toResponse(s *entity.Solicitud) *dto.SolicitudResponse {
	resp := &dto.SolicitudResponse{
		ID:             s.ID,
		ItemID:         s.ItemID,
		Tipo:           s.Tipo,
		Cantidad:       s.Cantidad,
		NumerosSerie:   s.NumerosSerie,
		Motivo:         s.Motivo,
		Solicitante:    s.Solicitante,
		FechaSolicitud: s.FechaSolicitud,
		Estado:         s.Estado,
		Aprobador:      s.Aprobador,
		FechaProceso:   s.FechaProceso,
		MotivoRechazo:  s.MotivoRechazo,
		Almacen:        s.Almacen,
	}
	if item, err := uc.itemRepo.GetByID(s.ItemID); err == nil && item != nil {
		snap := item.Snapshot()
		resp.Item = &dto.ItemSnapshotDTO{
			Descripcion: snap.Descripcion,
			Marca:       snap.Marca,
			Modelo:      snap.Modelo,
		}
	}
	return resp
}

// contieneSeries verifica que todas las series pedidas existan en el artículo.
func contieneSeries(disponibles, pedidas []string) bool {
	if len(pedidas) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(disponibles))
	for _, s := range disponibles {
		set[s] = struct{}{}
	}
	for _, s := range pedidas {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

// sinSeries quita de disponibles las series retiradas.
func sinSeries(disponibles, retiradas []string) []string {
	if len(retiradas) == 0 {
		return disponibles
	}
	quitar := make(map[string]struct{}, len(retiradas))
	for _, s := range retiradas {
		quitar[s] = struct{}{}
	}
	out := make([]string, 0, len(disponibles))
	for _, s := range disponibles {
		if _, ok := quitar[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
