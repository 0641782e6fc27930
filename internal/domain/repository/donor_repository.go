package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// DonorRepository define el puerto de persistencia para donadores.
type DonorRepository interface {
	Create(donor *entity.Donor) error
	GetByID(id string) (*entity.Donor, error)
	List() ([]*entity.Donor, error)
	Update(donor *entity.Donor) error
}
