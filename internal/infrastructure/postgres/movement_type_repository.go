package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo catálogo de tipos de movimiento sobre PostgreSQL.
// Solo lectura: la siembra vive en la migración.
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador.
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// GetByID obtiene un tipo por ID.
func (r *MovementTypeRepo) GetByID(id string) (*entity.MovementType, error) {
	return r.get(`SELECT id, codigo, nombre, factor FROM tipos_movimiento WHERE id = $1`, id)
}

// GetByCode obtiene un tipo por su código semántico (donation_in, ...).
func (r *MovementTypeRepo) GetByCode(code string) (*entity.MovementType, error) {
	return r.get(`SELECT id, codigo, nombre, factor FROM tipos_movimiento WHERE codigo = $1`, code)
}

func (r *MovementTypeRepo) get(query, arg string) (*entity.MovementType, error) {
	var t entity.MovementType
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&t.ID, &t.Code, &t.Name, &t.Factor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	return &t, nil
}

// List devuelve el catálogo completo.
func (r *MovementTypeRepo) List() ([]*entity.MovementType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, codigo, nombre, factor FROM tipos_movimiento ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list movement types: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementType
	for rows.Next() {
		var t entity.MovementType
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Factor); err != nil {
			return nil, fmt.Errorf("scan movement type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
