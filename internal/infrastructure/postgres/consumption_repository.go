package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo implementación de ConsumptionRepository sobre PostgreSQL.
type ConsumptionRepo struct {
	q Querier
}

// NewConsumptionRepository construye el adaptador de consumos de cocina.
func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

const consumptionColumns = `id, lote_id, variante_id, cantidad, fecha, responsable_id, aprobado_por, firma_texto, created_at`

func scanConsumption(row pgx.Row) (*entity.KitchenConsumption, error) {
	var c entity.KitchenConsumption
	err := row.Scan(&c.ID, &c.LotID, &c.VariantID, &c.Quantity, &c.Date,
		&c.ResponsibleID, &c.ApprovedBy, &c.SignatureText, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un consumo (nace pendiente: aprobado_por NULL).
func (r *ConsumptionRepo) Create(c *entity.KitchenConsumption) error {
	query := `
		INSERT INTO consumos_cocina (id, lote_id, variante_id, cantidad, fecha, responsable_id, aprobado_por, firma_texto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.LotID, c.VariantID, c.Quantity, c.Date, c.ResponsibleID,
		c.ApprovedBy, c.SignatureText, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert consumption: %w", err)
	}
	return nil
}

// GetByID obtiene un consumo por ID.
func (r *ConsumptionRepo) GetByID(id string) (*entity.KitchenConsumption, error) {
	query := `SELECT ` + consumptionColumns + ` FROM consumos_cocina WHERE id = $1`
	c, err := scanConsumption(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumption: %w", err)
	}
	return c, nil
}

// GetForUpdate obtiene el consumo bloqueando la fila: dos aprobaciones
// concurrentes se serializan y la segunda ve ApprovedBy ya asignado.
func (r *ConsumptionRepo) GetForUpdate(id string) (*entity.KitchenConsumption, error) {
	query := `SELECT ` + consumptionColumns + ` FROM consumos_cocina WHERE id = $1 FOR UPDATE`
	c, err := scanConsumption(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumption for update: %w", err)
	}
	return c, nil
}

// Update asienta la aprobación (aprobado_por + firma_texto); el resto de
// columnas es inmutable después del asiento.
func (r *ConsumptionRepo) Update(c *entity.KitchenConsumption) error {
	query := `UPDATE consumos_cocina SET aprobado_por = $2, firma_texto = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.ApprovedBy, c.SignatureText)
	if err != nil {
		return fmt.Errorf("update consumption: %w", err)
	}
	return nil
}

// ListPending lista consumos sin aprobar, los más antiguos primero.
func (r *ConsumptionRepo) ListPending() ([]*entity.KitchenConsumption, error) {
	query := `SELECT ` + consumptionColumns + `
		FROM consumos_cocina WHERE aprobado_por IS NULL ORDER BY fecha`
	return r.list(query)
}

// ListByResponsible lista consumos registrados por un responsable.
func (r *ConsumptionRepo) ListByResponsible(responsibleID string) ([]*entity.KitchenConsumption, error) {
	query := `SELECT ` + consumptionColumns + `
		FROM consumos_cocina WHERE responsable_id = $1 ORDER BY fecha DESC`
	return r.list(query, responsibleID)
}

func (r *ConsumptionRepo) list(query string, args ...any) ([]*entity.KitchenConsumption, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.KitchenConsumption
	for rows.Next() {
		c, err := scanConsumption(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
