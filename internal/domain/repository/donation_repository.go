package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// DonationRepository define el puerto de persistencia para donativos.
// CreateHeader y CreateDetail se usan dentro de la transacción de asiento.
type DonationRepository interface {
	CreateHeader(donation *entity.Donation) error
	CreateDetail(detail *entity.DonationDetail) error
	GetByID(id string) (*entity.Donation, error)
	ListDetails(donationID string) ([]*entity.DonationDetail, error)
	List(limit, offset int) ([]*entity.Donation, error)
}
