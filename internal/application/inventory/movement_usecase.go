package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	domaininv "github.com/tiservices/backoffice-api/internal/domain/inventory"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
	"github.com/tiservices/backoffice-api/internal/infrastructure/metrics"
)

// MovementUseCase registro directo y consulta del libro de movimientos.
//
// El registro directo (POST al endpoint de movimientos) aplica el cambio de
// cantidad al artículo Y escribe el asiento en una sola transacción. El
// sistema anterior hacía dos llamadas de red independientes y dejaba una
// ventana de inconsistencia entre ambas.
type MovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	exporter Exporter
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, exporter Exporter) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo, exporter: exporter}
}

// Register valida y registra un movimiento manual. La fecha la asigna el
// servidor; un itemId inexistente se rechaza con ErrDanglingReference en
// lugar de dejar un asiento huérfano.
func (uc *MovementUseCase) Register(ctx context.Context, almacen string, in dto.RegisterMovementRequest, usuario string) (*dto.MovementResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovementEntrada && in.Tipo != entity.MovementSalida {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, _ repository.SolicitudRepository) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.Almacen != almacen {
			return domain.ErrDanglingReference
		}
		nueva, err := domaininv.Apply(item.Cantidad, in.Tipo, in.Cantidad)
		if err != nil {
			return err
		}
		now := time.Now()
		expected := item.Version
		item.Cantidad = nueva
		item.UpdatedAt = now
		if err := itemRepo.Update(item, expected); err != nil {
			return err
		}
		snap := item.Snapshot()
		mov = &entity.Movement{
			ID:         uuid.New().String(),
			Item:       entity.ItemRef{ID: item.ID, Snapshot: &snap},
			Tipo:       in.Tipo,
			Cantidad:   in.Cantidad,
			Fecha:      now,
			Comentario: in.Comentario,
			Usuario:    usuario,
			Almacen:    item.Almacen,
		}
		return movRepo.Append(mov)
	})
	if err != nil {
		return nil, err
	}
	metrics.MovimientosRegistrados.WithLabelValues(mov.Tipo, mov.Almacen).Inc()
	return toMovementResponse(mov), nil
}

// Query lista movimientos por almacén, artículo opcional y rango inclusivo
// opcional desde/hasta. desde > hasta es violación de contrato del caller.
// Cada consulta relee el libro; el modelo de lectura no se cachea.
func (uc *MovementUseCase) Query(almacen string, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.Desde != nil && filter.Hasta != nil && filter.Desde.After(*filter.Hasta) {
		return nil, domain.ErrInvalidRange
	}
	filter.Almacen = almacen
	movs, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Movimientos: out,
		Page:        dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: len(out)},
	}, nil
}

// Resumen agrega el libro en el rango dado: saldos por artículo, totales por
// día y por semana ISO, y el top de salidas. Cómputo puro sobre la secuencia
// consultada.
func (uc *MovementUseCase) Resumen(almacen string, desde, hasta *time.Time, topN int) (*dto.MovementSummaryResponse, error) {
	if desde != nil && hasta != nil && desde.After(*hasta) {
		return nil, domain.ErrInvalidRange
	}
	if topN <= 0 {
		topN = 5
	}
	movs, err := uc.movRepo.List(repository.MovementFilter{Almacen: almacen, Desde: desde, Hasta: hasta})
	if err != nil {
		return nil, err
	}
	return &dto.MovementSummaryResponse{
		PorItem:    toItemTotalDTOs(domaininv.TotalsByItem(movs)),
		PorDia:     toPeriodTotalDTOs(domaininv.TotalsByDay(movs)),
		PorSemana:  toPeriodTotalDTOs(domaininv.TotalsByWeek(movs)),
		TopSalidas: toItemTotalDTOs(domaininv.TopSalidas(movs, topN)),
	}, nil
}

// Export genera el xlsx con los movimientos del rango.
func (uc *MovementUseCase) Export(almacen string, desde, hasta *time.Time) ([]byte, error) {
	if desde != nil && hasta != nil && desde.After(*hasta) {
		return nil, domain.ErrInvalidRange
	}
	movs, err := uc.movRepo.List(repository.MovementFilter{Almacen: almacen, Desde: desde, Hasta: hasta, Populate: true})
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(movs)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	resp := &dto.MovementResponse{
		ID:         m.ID,
		ItemID:     m.Item.ID,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		Fecha:      m.Fecha,
		Comentario: m.Comentario,
		Usuario:    m.Usuario,
		Almacen:    m.Almacen,
	}
	if m.Item.Populated() {
		resp.Item = &dto.ItemSnapshotDTO{
			Descripcion: m.Item.Snapshot.Descripcion,
			Marca:       m.Item.Snapshot.Marca,
			Modelo:      m.Item.Snapshot.Modelo,
		}
	}
	return resp
}

func toItemTotalDTOs(totals []domaininv.ItemTotal) []dto.ItemTotalDTO {
	out := make([]dto.ItemTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.ItemTotalDTO{
			ItemID:   t.ItemID,
			Entradas: t.Entradas,
			Salidas:  t.Salidas,
			Neto:     t.Neto(),
		})
	}
	return out
}

func toPeriodTotalDTOs(totals []domaininv.PeriodTotal) []dto.PeriodTotalDTO {
	out := make([]dto.PeriodTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.PeriodTotalDTO{
			Periodo:  t.Periodo,
			Entradas: t.Entradas,
			Salidas:  t.Salidas,
		})
	}
	return out
}
