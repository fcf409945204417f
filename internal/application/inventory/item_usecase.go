package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	domaininv "github.com/tiservices/backoffice-api/internal/domain/inventory"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
	"github.com/tiservices/backoffice-api/internal/infrastructure/metrics"
)

// ItemUseCase casos de uso CRUD para artículos de inventario. Toda mutación
// de cantidad pasa por la regla de conciliación y registra el movimiento
// derivado en la misma transacción (GetForUpdate + versión optimista).
//
// El almacén interior y el exterior usan este mismo código: la asimetría del
// sistema anterior (el exterior no registraba movimientos en ediciones
// manuales) era un descuido, no un diseño.
type ItemUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Create crea un artículo y, si nace con existencias, registra la entrada
// inicial en el mismo commit.
func (uc *ItemUseCase) Create(ctx context.Context, almacen string, in dto.SaveItemRequest, usuario string) (*dto.ItemResponse, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Descripcion:    in.Descripcion,
		Marca:          in.Marca,
		Modelo:         in.Modelo,
		Proveedor:      in.Proveedor,
		Unidad:         normalizeUnidad(in.Unidad),
		PrecioUnitario: in.PrecioUnitario,
		Cantidad:       in.Cantidad,
		NumerosSerie:   emptyIfNil(in.NumerosSerie),
		Categorias:     emptyIfNil(in.Categorias),
		Almacen:        almacen,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, _ repository.SolicitudRepository) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		delta, err := domaininv.Reconcile(0, item.Cantidad)
		if err != nil {
			return err
		}
		if delta == nil {
			return nil
		}
		return appendDelta(movRepo, item, delta, now, "", usuario)
	})
	if err != nil {
		return nil, err
	}
	if item.Cantidad > 0 {
		metrics.MovimientosRegistrados.WithLabelValues(entity.MovementEntrada, almacen).Inc()
	}
	return toItemResponse(item), nil
}

// Update escribe el registro completo. Exige la versión que leyó el cliente
// (bloqueo optimista): sin versión no hay forma de detectar la escritura
// perdida, así que se rechaza. Concilia el cambio de cantidad dentro de la
// transacción.
func (uc *ItemUseCase) Update(ctx context.Context, almacen, id string, in dto.SaveItemRequest, usuario string) (*dto.ItemResponse, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}
	if in.Version <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var (
		updated *entity.Item
		delta   *domaininv.Delta
	)
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, _ repository.SolicitudRepository) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil || item.Almacen != almacen {
			return domain.ErrNotFound
		}
		expected := in.Version
		if expected != item.Version {
			return domain.ErrConcurrentModification
		}

		delta, err = domaininv.Reconcile(item.Cantidad, in.Cantidad)
		if err != nil {
			return err
		}

		now := time.Now()
		item.Descripcion = in.Descripcion
		item.Marca = in.Marca
		item.Modelo = in.Modelo
		item.Proveedor = in.Proveedor
		item.Unidad = normalizeUnidad(in.Unidad)
		item.PrecioUnitario = in.PrecioUnitario
		item.Cantidad = in.Cantidad
		item.NumerosSerie = emptyIfNil(in.NumerosSerie)
		item.Categorias = emptyIfNil(in.Categorias)
		item.UpdatedAt = now

		if err := itemRepo.Update(item, expected); err != nil {
			return err
		}
		if delta != nil {
			if err := appendDelta(movRepo, item, delta, now, "", usuario); err != nil {
				return err
			}
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	if delta != nil {
		metrics.MovimientosRegistrados.WithLabelValues(delta.Tipo, almacen).Inc()
	}
	return toItemResponse(updated), nil
}

// Delete elimina el artículo. Si queda existencia, registra primero la salida
// de cierre con la instantánea denormalizada, para que el asiento sobreviva
// al borrado de la referencia.
func (uc *ItemUseCase) Delete(ctx context.Context, almacen, id, usuario string) error {
	var cierre bool
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, _ repository.SolicitudRepository) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil || item.Almacen != almacen {
			return domain.ErrNotFound
		}
		delta, err := domaininv.Reconcile(item.Cantidad, 0)
		if err != nil {
			return err
		}
		if delta != nil {
			// El asiento se escribe antes del DELETE con la instantánea
			// denormalizada; así sobrevive al borrado de la referencia.
			if err := appendDelta(movRepo, item, delta, time.Now(), "baja definitiva del artículo", usuario); err != nil {
				return err
			}
			cierre = true
		}
		return itemRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	if cierre {
		metrics.MovimientosRegistrados.WithLabelValues(entity.MovementSalida, almacen).Inc()
	}
	return nil
}

// Alta incrementa existencias (flujo de recepción). Cantidad > 0.
func (uc *ItemUseCase) Alta(ctx context.Context, almacen, id string, in dto.AltaBajaRequest, usuario string) (*dto.ItemResponse, error) {
	return uc.ajustar(ctx, almacen, id, in, usuario, entity.MovementEntrada)
}

// Baja decrementa existencias (flujo de retiro). Cantidad > 0; una baja mayor
// al stock actual se rechaza.
func (uc *ItemUseCase) Baja(ctx context.Context, almacen, id string, in dto.AltaBajaRequest, usuario string) (*dto.ItemResponse, error) {
	return uc.ajustar(ctx, almacen, id, in, usuario, entity.MovementSalida)
}

func (uc *ItemUseCase) ajustar(ctx context.Context, almacen, id string, in dto.AltaBajaRequest, usuario, tipo string) (*dto.ItemResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var updated *entity.Item
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, _ repository.SolicitudRepository) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil || item.Almacen != almacen {
			return domain.ErrNotFound
		}
		nueva, err := domaininv.Apply(item.Cantidad, tipo, in.Cantidad)
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
		delta := &domaininv.Delta{Tipo: tipo, Cantidad: in.Cantidad}
		if err := appendDelta(movRepo, item, delta, now, in.Comentario, usuario); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.MovimientosRegistrados.WithLabelValues(tipo, almacen).Inc()
	return toItemResponse(updated), nil
}

// GetByID obtiene un artículo por ID dentro de un almacén.
func (uc *ItemUseCase) GetByID(almacen, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Almacen != almacen {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista artículos de un almacén con búsqueda insensible a acentos sobre
// descripción, marca, modelo, proveedor y números de serie.
func (uc *ItemUseCase) List(almacen, search string, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()

	var (
		list []*entity.Item
		err  error
	)
	if search == "" {
		list, err = uc.itemRepo.ListByAlmacen(almacen, page.Limit, page.Offset)
	} else {
		// La búsqueda filtra sobre el conjunto completo y pagina después,
		// igual que el filtrado en memoria del sistema anterior.
		list, err = uc.itemRepo.ListByAlmacen(almacen, 0, 0)
	}
	if err != nil {
		return nil, err
	}
	if search != "" {
		list = filterItems(list, search)
		if page.Offset < len(list) {
			end := page.Offset + page.Limit
			if end > len(list) {
				end = len(list)
			}
			list = list[page.Offset:end]
		} else {
			list = nil
		}
	}

	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func filterItems(list []*entity.Item, search string) []*entity.Item {
	term := Fold(search)
	out := make([]*entity.Item, 0, len(list))
	for _, it := range list {
		if matchesItem(it, term) {
			out = append(out, it)
		}
	}
	return out
}

func matchesItem(it *entity.Item, term string) bool {
	for _, field := range []string{it.Descripcion, it.Marca, it.Modelo, it.Proveedor} {
		if strings.Contains(Fold(field), term) {
			return true
		}
	}
	for _, sn := range it.NumerosSerie {
		if strings.Contains(Fold(sn), term) {
			return true
		}
	}
	return false
}

func appendDelta(movRepo repository.MovementRepository, item *entity.Item, delta *domaininv.Delta, now time.Time, comentario, usuario string) error {
	snap := item.Snapshot()
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		Item:       entity.ItemRef{ID: item.ID, Snapshot: &snap},
		Tipo:       delta.Tipo,
		Cantidad:   delta.Cantidad,
		Fecha:      now,
		Comentario: comentario,
		Usuario:    usuario,
		Almacen:    item.Almacen,
	}
	return movRepo.Append(mov)
}

func validateItemInput(in dto.SaveItemRequest) error {
	if in.Descripcion == "" {
		return domain.ErrInvalidInput
	}
	if in.Cantidad < 0 {
		return domain.ErrInvalidQuantity
	}
	if in.PrecioUnitario.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	switch normalizeUnidad(in.Unidad) {
	case entity.UnidadPieza, entity.UnidadMetro:
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

func normalizeUnidad(u string) string {
	if u == "" {
		return entity.UnidadPieza
	}
	return strings.ToUpper(u)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             it.ID,
		Descripcion:    it.Descripcion,
		Marca:          it.Marca,
		Modelo:         it.Modelo,
		Proveedor:      it.Proveedor,
		Unidad:         it.Unidad,
		PrecioUnitario: it.PrecioUnitario,
		Cantidad:       it.Cantidad,
		NumerosSerie:   it.NumerosSerie,
		Categorias:     it.Categorias,
		Almacen:        it.Almacen,
		Version:        it.Version,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}
