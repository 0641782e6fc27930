package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.DonationRepository = (*DonationRepo)(nil)

// DonationRepo implementación de DonationRepository sobre PostgreSQL.
// CreateHeader y CreateDetail se llaman dentro de la transacción del
// coordinador de asientos.
type DonationRepo struct {
	q Querier
}

// NewDonationRepository construye el adaptador de donativos.
func NewDonationRepository(q Querier) *DonationRepo {
	return &DonationRepo{q: q}
}

// CreateHeader persiste la cabecera de un donativo.
func (r *DonationRepo) CreateHeader(d *entity.Donation) error {
	query := `
		INSERT INTO donativos (id, donador_id, fecha, total, notas, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.DonorID, d.Date, d.Total, d.Notes, d.ActorID, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de donativo.
func (r *DonationRepo) CreateDetail(det *entity.DonationDetail) error {
	query := `
		INSERT INTO detalles_donativo (id, donativo_id, lote_id, variante_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		det.ID, det.DonationID, det.LotID, det.VariantID, det.Quantity, det.UnitPrice)
	if err != nil {
		return fmt.Errorf("insert donation detail: %w", err)
	}
	return nil
}

// GetByID obtiene un donativo con sus detalles.
func (r *DonationRepo) GetByID(id string) (*entity.Donation, error) {
	query := `SELECT id, donador_id, fecha, total, notas, actor_id, created_at
		FROM donativos WHERE id = $1`
	var d entity.Donation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.DonorID, &d.Date, &d.Total, &d.Notes, &d.ActorID, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donation: %w", err)
	}
	details, err := r.ListDetails(id)
	if err != nil {
		return nil, err
	}
	for _, det := range details {
		d.Details = append(d.Details, *det)
	}
	return &d, nil
}

// ListDetails lista las líneas de un donativo.
func (r *DonationRepo) ListDetails(donationID string) ([]*entity.DonationDetail, error) {
	query := `SELECT id, donativo_id, lote_id, variante_id, cantidad, precio_unitario
		FROM detalles_donativo WHERE donativo_id = $1`
	rows, err := r.q.Query(context.Background(), query, donationID)
	if err != nil {
		return nil, fmt.Errorf("list donation details: %w", err)
	}
	defer rows.Close()
	var list []*entity.DonationDetail
	for rows.Next() {
		var det entity.DonationDetail
		if err := rows.Scan(&det.ID, &det.DonationID, &det.LotID, &det.VariantID,
			&det.Quantity, &det.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan donation detail: %w", err)
		}
		list = append(list, &det)
	}
	return list, rows.Err()
}

// List lista donativos con paginación, los más recientes primero.
func (r *DonationRepo) List(limit, offset int) ([]*entity.Donation, error) {
	query := `SELECT id, donador_id, fecha, total, notas, actor_id, created_at
		FROM donativos ORDER BY fecha DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Donation
	for rows.Next() {
		var d entity.Donation
		if err := rows.Scan(&d.ID, &d.DonorID, &d.Date, &d.Total, &d.Notes,
			&d.ActorID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
