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

var _ repository.ColaboradorRepository = (*ColaboradorRepo)(nil)

// ColaboradorRepo implementación del puerto ColaboradorRepository sobre PostgreSQL.
type ColaboradorRepo struct {
	q Querier
}

// NewColaboradorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewColaboradorRepository(q Querier) *ColaboradorRepo {
	return &ColaboradorRepo{q: q}
}

const colaboradorColumns = `id, numero_empleado, nombre, nss, puesto, fecha_alta_imss, activo, created_at, updated_at`

// Create persiste un colaborador. El número de empleado sale de la secuencia
// colaboradores_numero_seq y se escribe de vuelta en la entidad.
func (r *ColaboradorRepo) Create(colaborador *entity.Colaborador) error {
	query := `
		INSERT INTO colaboradores (id, numero_empleado, nombre, nss, puesto, fecha_alta_imss, activo, created_at, updated_at)
		VALUES ($1, nextval('colaboradores_numero_seq'), $2, $3, $4, $5, $6, $7, $8)
		RETURNING numero_empleado`
	err := r.q.QueryRow(context.Background(), query,
		colaborador.ID, colaborador.Nombre, colaborador.NSS, colaborador.Puesto,
		colaborador.FechaAltaIMSS, colaborador.Activo, colaborador.CreatedAt, colaborador.UpdatedAt,
	).Scan(&colaborador.NumeroEmpleado)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert colaborador: %w", err)
	}
	return nil
}

// GetByID obtiene un colaborador por ID.
func (r *ColaboradorRepo) GetByID(id string) (*entity.Colaborador, error) {
	return r.getBy("id", id)
}

// GetByNSS obtiene un colaborador por número de seguro social.
func (r *ColaboradorRepo) GetByNSS(nss string) (*entity.Colaborador, error) {
	return r.getBy("nss", nss)
}

func (r *ColaboradorRepo) getBy(column, value string) (*entity.Colaborador, error) {
	query := `SELECT ` + colaboradorColumns + ` FROM colaboradores WHERE ` + column + ` = $1`
	var c entity.Colaborador
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.NumeroEmpleado, &c.Nombre, &c.NSS, &c.Puesto,
		&c.FechaAltaIMSS, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colaborador: %w", err)
	}
	return &c, nil
}

// List lista colaboradores por número de empleado; soloActivos filtra bajas.
func (r *ColaboradorRepo) List(soloActivos bool, limit, offset int) ([]*entity.Colaborador, error) {
	query := `SELECT ` + colaboradorColumns + ` FROM colaboradores`
	if soloActivos {
		query += ` WHERE activo`
	}
	query += ` ORDER BY numero_empleado LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list colaboradores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Colaborador
	for rows.Next() {
		var c entity.Colaborador
		if err := rows.Scan(&c.ID, &c.NumeroEmpleado, &c.Nombre, &c.NSS, &c.Puesto,
			&c.FechaAltaIMSS, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan colaborador: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un colaborador. El número de empleado no cambia.
func (r *ColaboradorRepo) Update(colaborador *entity.Colaborador) error {
	query := `
		UPDATE colaboradores SET nombre = $2, nss = $3, puesto = $4, fecha_alta_imss = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		colaborador.ID, colaborador.Nombre, colaborador.NSS, colaborador.Puesto,
		colaborador.FechaAltaIMSS, colaborador.Activo, colaborador.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update colaborador: %w", err)
	}
	return nil
}

// Delete elimina un colaborador por ID.
func (r *ColaboradorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM colaboradores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete colaborador: %w", err)
	}
	return nil
}
