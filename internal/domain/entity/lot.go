package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot es la raíz del control físico de existencias: una cantidad de una variante
// recibida en un almacén a un costo, normalmente con origen en un donativo.
//
// CurrentQuantity es una proyección cacheada del libro de movimientos:
// CurrentQuantity == OriginalQuantity + Σ(movimiento.Quantity × tipo.Factor).
// Solo el coordinador de asientos la modifica, siempre dentro de la misma
// transacción que registra el movimiento.
type Lot struct {
	ID               string
	VariantID        string
	WarehouseID      string
	DonationID       *string // nil para lotes comprados o de ajuste
	UnitCost         decimal.Decimal
	OriginalQuantity decimal.Decimal // fija al crear el lote
	CurrentQuantity  decimal.Decimal // derivada, nunca negativa
	ReceivedAt       time.Time
	ExpiresAt        *time.Time
	Active           bool
	Notes            string
}
