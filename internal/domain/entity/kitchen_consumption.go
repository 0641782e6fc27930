package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// KitchenConsumption registra el uso de un lote en la cocina del comedor.
// Ciclo de vida: pendiente (ApprovedBy nil) → aprobado, exactamente una vez.
// No existe estado de rechazo: una salida equivocada se corrige con un ajuste
// compensatorio de entrada sobre el lote.
//
// La aprobación es un visto bueno administrativo: el stock ya se descontó al
// registrar el consumo, aprobar no toca el libro de movimientos.
type KitchenConsumption struct {
	ID            string
	LotID         string
	VariantID     string
	Quantity      decimal.Decimal
	Date          time.Time
	ResponsibleID string // quien retiró el producto
	ApprovedBy    *string
	SignatureText *string
	CreatedAt     time.Time
}

// Approved indica si el consumo ya tiene visto bueno.
func (c KitchenConsumption) Approved() bool { return c.ApprovedBy != nil }
