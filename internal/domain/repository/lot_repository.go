package repository

import (
	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes.
//
// GetForUpdate y UpdateCurrentQuantity existen solo para el coordinador de
// asientos, dentro de una transacción: el chequeo de stock y el descuento deben
// ocurrir con la fila del lote bloqueada (SELECT FOR UPDATE o equivalente).
type LotRepository interface {
	Create(lot *entity.Lot) error
	// GetByID devuelve el lote o nil si no existe o está inactivo.
	GetByID(id string) (*entity.Lot, error)
	// GetForUpdate bloquea la fila del lote para lectura-modificación-escritura.
	GetForUpdate(id string) (*entity.Lot, error)
	UpdateCurrentQuantity(id string, quantity decimal.Decimal) error
	ListActiveByVariant(variantID string) ([]*entity.Lot, error)
	ListActiveByVariantAndWarehouse(variantID, warehouseID string) ([]*entity.Lot, error)
	// ListAvailable devuelve lotes activos con existencias (pantalla de bazar).
	ListAvailable(warehouseID string) ([]*entity.Lot, error)
}
