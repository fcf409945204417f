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

var _ repository.HerramientaRepository = (*HerramientaRepo)(nil)

// HerramientaRepo implementación del puerto HerramientaRepository sobre PostgreSQL.
type HerramientaRepo struct {
	q Querier
}

// NewHerramientaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHerramientaRepository(q Querier) *HerramientaRepo {
	return &HerramientaRepo{q: q}
}

const herramientaColumns = `id, nombre, marca, modelo, valor, serial_number, colaborador_id, fecha_asignacion, activo, created_at, updated_at`

// Create persiste una herramienta nueva.
func (r *HerramientaRepo) Create(herramienta *entity.Herramienta) error {
	query := `
		INSERT INTO herramientas (` + herramientaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		herramienta.ID, herramienta.Nombre, herramienta.Marca, herramienta.Modelo,
		herramienta.Valor, herramienta.SerialNumber, herramienta.ColaboradorID,
		herramienta.FechaAsignacion, herramienta.Activo, herramienta.CreatedAt, herramienta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // colaborador inexistente
		}
		return fmt.Errorf("insert herramienta: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *HerramientaRepo) GetByID(id string) (*entity.Herramienta, error) {
	return r.getBy("id", id)
}

// GetBySerialNumber obtiene una herramienta por número de serie.
func (r *HerramientaRepo) GetBySerialNumber(serial string) (*entity.Herramienta, error) {
	return r.getBy("serial_number", serial)
}

func (r *HerramientaRepo) getBy(column, value string) (*entity.Herramienta, error) {
	query := `SELECT ` + herramientaColumns + ` FROM herramientas WHERE ` + column + ` = $1`
	var h entity.Herramienta
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&h.ID, &h.Nombre, &h.Marca, &h.Modelo, &h.Valor, &h.SerialNumber,
		&h.ColaboradorID, &h.FechaAsignacion, &h.Activo, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get herramienta: %w", err)
	}
	return &h, nil
}

// List lista herramientas ordenadas por nombre.
func (r *HerramientaRepo) List(limit, offset int) ([]*entity.Herramienta, error) {
	query := `SELECT ` + herramientaColumns + ` FROM herramientas ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list herramientas: %w", err)
	}
	defer rows.Close()
	return scanHerramientas(rows)
}

// ListByColaborador lista las herramientas asignadas a un colaborador.
func (r *HerramientaRepo) ListByColaborador(colaboradorID string) ([]*entity.Herramienta, error) {
	query := `SELECT ` + herramientaColumns + ` FROM herramientas WHERE colaborador_id = $1 ORDER BY fecha_asignacion`
	rows, err := r.q.Query(context.Background(), query, colaboradorID)
	if err != nil {
		return nil, fmt.Errorf("list herramientas por colaborador: %w", err)
	}
	defer rows.Close()
	return scanHerramientas(rows)
}

func scanHerramientas(rows pgx.Rows) ([]*entity.Herramienta, error) {
	var list []*entity.Herramienta
	for rows.Next() {
		var h entity.Herramienta
		if err := rows.Scan(&h.ID, &h.Nombre, &h.Marca, &h.Modelo, &h.Valor, &h.SerialNumber,
			&h.ColaboradorID, &h.FechaAsignacion, &h.Activo, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan herramienta: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza una herramienta.
func (r *HerramientaRepo) Update(herramienta *entity.Herramienta) error {
	query := `
		UPDATE herramientas SET nombre = $2, marca = $3, modelo = $4, valor = $5,
			serial_number = $6, colaborador_id = $7, fecha_asignacion = $8, activo = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		herramienta.ID, herramienta.Nombre, herramienta.Marca, herramienta.Modelo,
		herramienta.Valor, herramienta.SerialNumber, herramienta.ColaboradorID,
		herramienta.FechaAsignacion, herramienta.Activo, herramienta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // colaborador inexistente
		}
		return fmt.Errorf("update herramienta: %w", err)
	}
	return nil
}

// Delete elimina una herramienta por ID.
func (r *HerramientaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM herramientas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete herramienta: %w", err)
	}
	return nil
}
