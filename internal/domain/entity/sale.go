package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta del bazar: salidas de inventario contra lotes de un almacén,
// registradas junto con sus detalles y movimientos en una sola transacción.
type Sale struct {
	ID          string
	Date        time.Time
	Total       decimal.Decimal
	ActorID     string
	WarehouseID string
	CreatedAt   time.Time

	Details []SaleDetail
}

// SaleDetail es una línea de venta contra un lote concreto.
type SaleDetail struct {
	ID        string
	SaleID    string
	LotID     string
	VariantID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
