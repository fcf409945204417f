package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación del puerto SolicitudRepository sobre PostgreSQL.
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

const solicitudColumns = `id, almacen, item_id, tipo, cantidad, numeros_serie, motivo, solicitante, fecha_solicitud, estado, aprobador, fecha_proceso, motivo_rechazo`

// Create persiste una solicitud nueva.
func (r *SolicitudRepo) Create(sol *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (` + solicitudColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sol.ID, sol.Almacen, sol.ItemID, sol.Tipo, sol.Cantidad,
		sol.NumerosSerie, sol.Motivo, sol.Solicitante, sol.FechaSolicitud,
		sol.Estado, sol.Aprobador, sol.FechaProceso, sol.MotivoRechazo,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *SolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	return r.get(id, "")
}

// GetForUpdate obtiene la solicitud y bloquea la fila (SELECT FOR UPDATE).
func (r *SolicitudRepo) GetForUpdate(id string) (*entity.Solicitud, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *SolicitudRepo) get(id, suffix string) (*entity.Solicitud, error) {
	query := `SELECT ` + solicitudColumns + ` FROM solicitudes WHERE id = $1` + suffix
	var s entity.Solicitud
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Almacen, &s.ItemID, &s.Tipo, &s.Cantidad, &s.NumerosSerie,
		&s.Motivo, &s.Solicitante, &s.FechaSolicitud, &s.Estado,
		&s.Aprobador, &s.FechaProceso, &s.MotivoRechazo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return &s, nil
}

// List devuelve las solicitudes que cumplen el filtro, más reciente primero.
func (r *SolicitudRepo) List(filter repository.SolicitudFilter) ([]*entity.Solicitud, error) {
	query := `SELECT ` + solicitudColumns + ` FROM solicitudes WHERE 1=1`
	var args []any
	pos := 1
	if filter.Almacen != "" {
		query += fmt.Sprintf(" AND almacen = $%d", pos)
		args = append(args, filter.Almacen)
		pos++
	}
	if filter.Estado != "" {
		query += fmt.Sprintf(" AND estado = $%d", pos)
		args = append(args, filter.Estado)
		pos++
	}
	if filter.Solicitante != "" {
		query += fmt.Sprintf(" AND solicitante = $%d", pos)
		args = append(args, filter.Solicitante)
		pos++
	}
	query += " ORDER BY fecha_solicitud DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Solicitud
	for rows.Next() {
		var s entity.Solicitud
		if err := rows.Scan(
			&s.ID, &s.Almacen, &s.ItemID, &s.Tipo, &s.Cantidad, &s.NumerosSerie,
			&s.Motivo, &s.Solicitante, &s.FechaSolicitud, &s.Estado,
			&s.Aprobador, &s.FechaProceso, &s.MotivoRechazo,
		); err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update escribe el estado y los datos de proceso de la solicitud.
func (r *SolicitudRepo) Update(sol *entity.Solicitud) error {
	query := `
		UPDATE solicitudes SET estado = $2, aprobador = $3, fecha_proceso = $4, motivo_rechazo = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sol.ID, sol.Estado, sol.Aprobador, sol.FechaProceso, sol.MotivoRechazo,
	)
	if err != nil {
		return fmt.Errorf("update solicitud: %w", err)
	}
	return nil
}
