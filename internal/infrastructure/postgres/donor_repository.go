package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

var _ repository.DonorRepository = (*DonorRepo)(nil)

// DonorRepo implementación de DonorRepository sobre PostgreSQL.
type DonorRepo struct {
	q Querier
}

// NewDonorRepository construye el adaptador de donadores.
func NewDonorRepository(q Querier) *DonorRepo {
	return &DonorRepo{q: q}
}

const donorColumns = `id, nombre, tipo, contacto, email, telefono, direccion, activo, created_at, updated_at`

// Create persiste un donador.
func (r *DonorRepo) Create(d *entity.Donor) error {
	query := `
		INSERT INTO donadores (id, nombre, tipo, contacto, email, telefono, direccion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Type, d.ContactPerson, d.Email, d.Phone, d.Address,
		d.Active, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert donor: %w", err)
	}
	return nil
}

// GetByID obtiene un donador por ID.
func (r *DonorRepo) GetByID(id string) (*entity.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donadores WHERE id = $1`
	var d entity.Donor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Type, &d.ContactPerson, &d.Email, &d.Phone, &d.Address,
		&d.Active, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donor: %w", err)
	}
	return &d, nil
}

// List lista todos los donadores.
func (r *DonorRepo) List() ([]*entity.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donadores ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Donor
	for rows.Next() {
		var d entity.Donor
		if err := rows.Scan(&d.ID, &d.Name, &d.Type, &d.ContactPerson, &d.Email,
			&d.Phone, &d.Address, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un donador.
func (r *DonorRepo) Update(d *entity.Donor) error {
	query := `UPDATE donadores
		SET nombre = $2, tipo = $3, contacto = $4, email = $5, telefono = $6, direccion = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Type, d.ContactPerson, d.Email, d.Phone, d.Address,
		d.Active, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update donor: %w", err)
	}
	return nil
}
