package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, variante_id, almacen_id, donativo_id, costo_unitario,
	cantidad_original, cantidad_actual, recibido_en, caduca_en, activo, notas`

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.VariantID, &l.WarehouseID, &l.DonationID, &l.UnitCost,
		&l.OriginalQuantity, &l.CurrentQuantity, &l.ReceivedAt, &l.ExpiresAt,
		&l.Active, &l.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un lote nuevo.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lotes (id, variante_id, almacen_id, donativo_id, costo_unitario,
			cantidad_original, cantidad_actual, recibido_en, caduca_en, activo, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.VariantID, lot.WarehouseID, lot.DonationID, lot.UnitCost,
		lot.OriginalQuantity, lot.CurrentQuantity, lot.ReceivedAt, lot.ExpiresAt,
		lot.Active, lot.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote activo por ID; nil si no existe o está inactivo.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lotes WHERE id = $1 AND activo = true`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return lot, nil
}

// GetForUpdate obtiene el lote bloqueando la fila (SELECT FOR UPDATE). Dos
// asientos concurrentes contra el mismo lote se serializan aquí.
func (r *LotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lotes WHERE id = $1 AND activo = true FOR UPDATE`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot for update: %w", err)
	}
	return lot, nil
}

// UpdateCurrentQuantity escribe la proyección cacheada de existencias.
func (r *LotRepo) UpdateCurrentQuantity(id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lotes SET cantidad_actual = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	return nil
}

// ListActiveByVariant lista lotes activos de una variante en todos los almacenes.
func (r *LotRepo) ListActiveByVariant(variantID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lotes WHERE variante_id = $1 AND activo = true ORDER BY recibido_en`
	return r.list(query, variantID)
}

// ListActiveByVariantAndWarehouse lista lotes activos de una variante en un almacén.
func (r *LotRepo) ListActiveByVariantAndWarehouse(variantID, warehouseID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lotes WHERE variante_id = $1 AND almacen_id = $2 AND activo = true ORDER BY recibido_en`
	return r.list(query, variantID, warehouseID)
}

// ListAvailable lista lotes activos con existencias, opcionalmente por almacén.
func (r *LotRepo) ListAvailable(warehouseID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lotes WHERE activo = true AND cantidad_actual > 0`
	args := []any{}
	if warehouseID != "" {
		query += ` AND almacen_id = $1`
		args = append(args, warehouseID)
	}
	query += ` ORDER BY recibido_en`
	return r.list(query, args...)
}

func (r *LotRepo) list(query string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, lot)
	}
	return list, rows.Err()
}
