package postgres

import (
	"context"
	"fmt"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
//
// El libro es de solo inserción. item_id no lleva FK: el asiento sobrevive
// al borrado del artículo y conserva su identidad en las columnas
// denormalizadas item_descripcion / item_marca / item_modelo.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append inserta un asiento. Nunca hay UPDATE ni DELETE sobre esta tabla.
func (r *MovementRepo) Append(mov *entity.Movement) error {
	query := `
		INSERT INTO movements (id, item_id, item_descripcion, item_marca, item_modelo, tipo, cantidad, fecha, comentario, usuario, almacen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	var descripcion, marca, modelo string
	if mov.Item.Snapshot != nil {
		descripcion = mov.Item.Snapshot.Descripcion
		marca = mov.Item.Snapshot.Marca
		modelo = mov.Item.Snapshot.Modelo
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Item.ID, descripcion, marca, modelo,
		mov.Tipo, mov.Cantidad, mov.Fecha, mov.Comentario, mov.Usuario, mov.Almacen,
	)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// List consulta el libro con filtros opcionales. El rango desde/hasta es
// inclusivo en ambos extremos. Con Populate, la identidad del artículo sale
// del artículo vivo si existe y de la copia denormalizada si ya fue borrado.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.item_id,
			COALESCE(i.descripcion, m.item_descripcion),
			COALESCE(i.marca, m.item_marca),
			COALESCE(i.modelo, m.item_modelo),
			m.tipo, m.cantidad, m.fecha, m.comentario, m.usuario, m.almacen
		FROM movements m
		LEFT JOIN items i ON i.id = m.item_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.Almacen != "" {
		query += fmt.Sprintf(" AND m.almacen = $%d", pos)
		args = append(args, filter.Almacen)
		pos++
	}
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND m.item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.Desde != nil {
		query += fmt.Sprintf(" AND m.fecha >= $%d", pos)
		args = append(args, *filter.Desde)
		pos++
	}
	if filter.Hasta != nil {
		query += fmt.Sprintf(" AND m.fecha <= $%d", pos)
		args = append(args, *filter.Hasta)
		pos++
	}
	query += " ORDER BY m.fecha"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var snap entity.ItemSnapshot
		if err := rows.Scan(&m.ID, &m.Item.ID, &snap.Descripcion, &snap.Marca, &snap.Modelo,
			&m.Tipo, &m.Cantidad, &m.Fecha, &m.Comentario, &m.Usuario, &m.Almacen); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if filter.Populate {
			m.Item.Snapshot = &snap
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
