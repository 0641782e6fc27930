package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas de bazar.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateHeader persiste la cabecera de una venta.
func (r *SaleRepo) CreateHeader(s *entity.Sale) error {
	query := `
		INSERT INTO ventas_bazar (id, fecha, total, actor_id, almacen_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Date, s.Total, s.ActorID, s.WarehouseID, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de venta.
func (r *SaleRepo) CreateDetail(det *entity.SaleDetail) error {
	query := `
		INSERT INTO detalles_venta (id, venta_id, lote_id, variante_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		det.ID, det.SaleID, det.LotID, det.VariantID, det.Quantity, det.UnitPrice)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus detalles.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT id, fecha, total, actor_id, almacen_id, created_at
		FROM ventas_bazar WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Date, &s.Total, &s.ActorID, &s.WarehouseID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	details, err := r.ListDetails(id)
	if err != nil {
		return nil, err
	}
	for _, det := range details {
		s.Details = append(s.Details, *det)
	}
	return &s, nil
}

// ListDetails lista las líneas de una venta.
func (r *SaleRepo) ListDetails(saleID string) ([]*entity.SaleDetail, error) {
	query := `SELECT id, venta_id, lote_id, variante_id, cantidad, precio_unitario
		FROM detalles_venta WHERE venta_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var det entity.SaleDetail
		if err := rows.Scan(&det.ID, &det.SaleID, &det.LotID, &det.VariantID,
			&det.Quantity, &det.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &det)
	}
	return list, rows.Err()
}

// List lista ventas con paginación, las más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT id, fecha, total, actor_id, almacen_id, created_at
		FROM ventas_bazar ORDER BY fecha DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.Total, &s.ActorID, &s.WarehouseID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
