package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. El fakeTxRunner pasa los
// mismos fakes como repos "atados a la tx"; si el callback falla, restaura el
// estado previo para simular el rollback.

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) clone() map[string]*entity.Item {
	out := make(map[string]*entity.Item, len(r.items))
	for k, v := range r.items {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	if _, ok := r.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.Item, expectedVersion int) error {
	cur, ok := r.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Version != expectedVersion {
		return domain.ErrConcurrentModification
	}
	cp := *item
	cp.Version = expectedVersion + 1
	r.items[item.ID] = &cp
	item.Version = cp.Version
	return nil
}

func (r *fakeItemRepo) ListByAlmacen(almacen string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.Almacen == almacen {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descripcion < out[j].Descripcion })
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeMovementRepo struct {
	movs []*entity.Movement
}

func (r *fakeMovementRepo) Append(mov *entity.Movement) error {
	cp := *mov
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movs {
		if filter.Almacen != "" && m.Almacen != filter.Almacen {
			continue
		}
		if filter.ItemID != "" && m.Item.ID != filter.ItemID {
			continue
		}
		if filter.Desde != nil && m.Fecha.Before(*filter.Desde) {
			continue
		}
		if filter.Hasta != nil && m.Fecha.After(*filter.Hasta) {
			continue
		}
		cp := *m
		if !filter.Populate {
			cp.Item.Snapshot = nil
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}

type fakeSolicitudRepo struct {
	sols map[string]*entity.Solicitud
	seq  int
}

func newFakeSolicitudRepo() *fakeSolicitudRepo {
	return &fakeSolicitudRepo{sols: make(map[string]*entity.Solicitud)}
}

func (r *fakeSolicitudRepo) clone() map[string]*entity.Solicitud {
	out := make(map[string]*entity.Solicitud, len(r.sols))
	for k, v := range r.sols {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (r *fakeSolicitudRepo) Create(sol *entity.Solicitud) error {
	if sol.ID == "" {
		r.seq++
		sol.ID = "sol-" + string(rune('0'+r.seq))
	}
	cp := *sol
	r.sols[sol.ID] = &cp
	return nil
}

func (r *fakeSolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	s, ok := r.sols[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSolicitudRepo) GetForUpdate(id string) (*entity.Solicitud, error) {
	return r.GetByID(id)
}

func (r *fakeSolicitudRepo) List(filter repository.SolicitudFilter) ([]*entity.Solicitud, error) {
	var out []*entity.Solicitud
	for _, s := range r.sols {
		if filter.Almacen != "" && s.Almacen != filter.Almacen {
			continue
		}
		if filter.Estado != "" && s.Estado != filter.Estado {
			continue
		}
		if filter.Solicitante != "" && s.Solicitante != filter.Solicitante {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaSolicitud.After(out[j].FechaSolicitud) })
	return out, nil
}

func (r *fakeSolicitudRepo) Update(sol *entity.Solicitud) error {
	if _, ok := r.sols[sol.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sol
	r.sols[sol.ID] = &cp
	return nil
}

type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	movRepo  *fakeMovementRepo
	solRepo  *fakeSolicitudRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository, repository.SolicitudRepository) error) error {
	prevItems := tx.itemRepo.clone()
	prevMovs := append([]*entity.Movement(nil), tx.movRepo.movs...)
	prevSols := tx.solRepo.clone()
	if err := fn(tx.itemRepo, tx.movRepo, tx.solRepo); err != nil {
		tx.itemRepo.items = prevItems
		tx.movRepo.movs = prevMovs
		tx.solRepo.sols = prevSols
		return err
	}
	return nil
}

type fakeExporter struct {
	lastCount int
}

func (e *fakeExporter) Export(movs []*entity.Movement) ([]byte, error) {
	e.lastCount = len(movs)
	return []byte("xlsx"), nil
}

func timePtr(t time.Time) *time.Time { return &t }
