package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

var _ repository.GuiaRepository = (*GuiaRepo)(nil)

// GuiaRepo implementación del puerto GuiaRepository sobre PostgreSQL.
type GuiaRepo struct {
	q Querier
}

// NewGuiaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuiaRepository(q Querier) *GuiaRepo {
	return &GuiaRepo{q: q}
}

const guiaColumns = `id, numero_guia, proveedor, paqueteria, fecha_pedido, fecha_llegada, proyectos, estado, comentarios, created_at, updated_at`

// Create persiste una guía nueva.
func (r *GuiaRepo) Create(guia *entity.Guia) error {
	query := `
		INSERT INTO guias (` + guiaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		guia.ID, guia.NumeroGuia, guia.Proveedor, guia.Paqueteria,
		guia.FechaPedido, guia.FechaLlegada, guia.Proyectos, guia.Estado,
		guia.Comentarios, guia.CreatedAt, guia.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert guia: %w", err)
	}
	return nil
}

// GetByID obtiene una guía por ID.
func (r *GuiaRepo) GetByID(id string) (*entity.Guia, error) {
	query := `SELECT ` + guiaColumns + ` FROM guias WHERE id = $1`
	var g entity.Guia
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.NumeroGuia, &g.Proveedor, &g.Paqueteria, &g.FechaPedido,
		&g.FechaLlegada, &g.Proyectos, &g.Estado, &g.Comentarios, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guia: %w", err)
	}
	return &g, nil
}

// List lista guías de la más reciente a la más antigua.
func (r *GuiaRepo) List(limit, offset int) ([]*entity.Guia, error) {
	query := `SELECT ` + guiaColumns + ` FROM guias ORDER BY fecha_pedido DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list guias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Guia
	for rows.Next() {
		var g entity.Guia
		if err := rows.Scan(&g.ID, &g.NumeroGuia, &g.Proveedor, &g.Paqueteria, &g.FechaPedido,
			&g.FechaLlegada, &g.Proyectos, &g.Estado, &g.Comentarios, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan guia: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza una guía.
func (r *GuiaRepo) Update(guia *entity.Guia) error {
	query := `
		UPDATE guias SET numero_guia = $2, proveedor = $3, paqueteria = $4, fecha_pedido = $5,
			fecha_llegada = $6, proyectos = $7, estado = $8, comentarios = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		guia.ID, guia.NumeroGuia, guia.Proveedor, guia.Paqueteria, guia.FechaPedido,
		guia.FechaLlegada, guia.Proyectos, guia.Estado, guia.Comentarios, guia.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update guia: %w", err)
	}
	return nil
}

// Delete elimina una guía por ID.
func (r *GuiaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM guias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guia: %w", err)
	}
	return nil
}

// MarkAtrasadas marca como atrasadas las guías pendientes cuya fecha de
// llegada quedó antes del corte. UPDATE en lote, una sola pasada.
func (r *GuiaRepo) MarkAtrasadas(corte time.Time) (int, error) {
	query := `
		UPDATE guias SET estado = $1, updated_at = now()
		WHERE estado IN ($2, $3) AND fecha_llegada < $4`
	cmd, err := r.q.Exec(context.Background(), query,
		entity.GuiaAtrasada, entity.GuiaNoEntregada, entity.GuiaEnTransito, corte,
	)
	if err != nil {
		return 0, fmt.Errorf("marcar guias atrasadas: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
