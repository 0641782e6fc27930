package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// ProductRepository define el puerto para productos (datos de referencia).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	Update(product *entity.Product) error
}

// VariantRepository define el puerto para variantes de producto.
// Las variantes con movimientos solo admiten baja lógica.
type VariantRepository interface {
	Create(variant *entity.ProductVariant) error
	GetByID(id string) (*entity.ProductVariant, error)
	ListActiveByProduct(productID string) ([]*entity.ProductVariant, error)
	ListActive() ([]*entity.ProductVariant, error)
	Update(variant *entity.ProductVariant) error
}
