package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, descripcion, marca, modelo, proveedor, unidad, precio_unitario, cantidad, numeros_serie, categorias, almacen, version, created_at, updated_at`

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Descripcion, item.Marca, item.Modelo, item.Proveedor,
		item.Unidad, item.PrecioUnitario, item.Cantidad, item.NumerosSerie,
		item.Categorias, item.Almacen, item.Version, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.get(id, "")
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *ItemRepo) get(id, suffix string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1` + suffix
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Descripcion, &it.Marca, &it.Modelo, &it.Proveedor,
		&it.Unidad, &it.PrecioUnitario, &it.Cantidad, &it.NumerosSerie,
		&it.Categorias, &it.Almacen, &it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update escribe el artículo con bloqueo optimista: la fila solo cambia si la
// versión en base coincide con la que leyó el caller. Cero filas afectadas
// significa que alguien más ganó la carrera.
func (r *ItemRepo) Update(item *entity.Item, expectedVersion int) error {
	query := `
		UPDATE items SET descripcion = $2, marca = $3, modelo = $4, proveedor = $5,
			unidad = $6, precio_unitario = $7, cantidad = $8, numeros_serie = $9,
			categorias = $10, updated_at = $11, version = version + 1
		WHERE id = $1 AND version = $12`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Descripcion, item.Marca, item.Modelo, item.Proveedor,
		item.Unidad, item.PrecioUnitario, item.Cantidad, item.NumerosSerie,
		item.Categorias, item.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		cur, err := r.GetByID(item.ID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConcurrentModification
	}
	item.Version = expectedVersion + 1
	return nil
}

// ListByAlmacen lista artículos de un almacén ordenados por descripción.
// limit <= 0 lista sin paginar.
func (r *ItemRepo) ListByAlmacen(almacen string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE almacen = $1 ORDER BY descripcion`
	args := []any{almacen}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Descripcion, &it.Marca, &it.Modelo, &it.Proveedor,
			&it.Unidad, &it.PrecioUnitario, &it.Cantidad, &it.NumerosSerie,
			&it.Categorias, &it.Almacen, &it.Version, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID. Los asientos del libro conservan el
// item_id y su instantánea denormalizada; no hay FK que los toque.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
