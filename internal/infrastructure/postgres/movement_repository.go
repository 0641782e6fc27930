package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL.
// Append-only: solo INSERT y SELECT; no existen UPDATE ni DELETE contra
// movimientos_inventario.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, seq, lote_id, variante_id, tipo_movimiento_id, cantidad, fecha, actor_id, referencia`

// Create asienta un movimiento. La secuencia la asigna la base (bigserial) y
// se devuelve en movement.Seq: desempata el orden de auditoría entre asientos
// con la misma fecha.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos_inventario (id, lote_id, variante_id, tipo_movimiento_id, cantidad, fecha, actor_id, referencia)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		movement.ID, movement.LotID, movement.VariantID, movement.MovementTypeID,
		movement.Quantity, movement.Date, movement.ActorID, movement.Reference,
	).Scan(&movement.Seq)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByLot lista los asientos de un lote en orden de auditoría.
func (r *MovementRepo) ListByLot(lotID string) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{LotID: lotID})
}

// ListByVariant lista los asientos de una variante en orden de auditoría.
func (r *MovementRepo) ListByVariant(variantID string) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{VariantID: variantID})
}

// ListByDateRange lista los asientos de un período (inclusivo).
func (r *MovementRepo) ListByDateRange(from, to time.Time) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{From: &from, To: &to})
}

// List lista asientos con filtros opcionales, fecha DESC y seq DESC.
func (r *MovementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos_inventario WHERE 1=1`
	var args []any
	pos := 1
	add := func(clause string, v any) {
		query += fmt.Sprintf(clause, pos)
		args = append(args, v)
		pos++
	}
	if f.LotID != "" {
		add(" AND lote_id = $%d", f.LotID)
	}
	if f.VariantID != "" {
		add(" AND variante_id = $%d", f.VariantID)
	}
	if f.MovementTypeID != "" {
		add(" AND tipo_movimiento_id = $%d", f.MovementTypeID)
	}
	if f.From != nil {
		add(" AND fecha >= $%d", *f.From)
	}
	if f.To != nil {
		add(" AND fecha <= $%d", *f.To)
	}
	query += " ORDER BY fecha DESC, seq DESC"
	if f.Limit > 0 {
		add(" LIMIT $%d", f.Limit)
	}
	if f.Offset > 0 {
		add(" OFFSET $%d", f.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Seq, &m.LotID, &m.VariantID, &m.MovementTypeID,
			&m.Quantity, &m.Date, &m.ActorID, &m.Reference); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
