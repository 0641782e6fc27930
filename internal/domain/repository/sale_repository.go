package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas de bazar.
type SaleRepository interface {
	CreateHeader(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	ListDetails(saleID string) ([]*entity.SaleDetail, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
