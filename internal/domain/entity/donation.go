package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation es la cabecera de un donativo recibido. Se crea atómicamente con sus
// detalles, los lotes que originan y un movimiento de entrada por lote.
type Donation struct {
	ID        string
	DonorID   *string // nil = donativo anónimo
	Date      time.Time
	Total     decimal.Decimal // Σ cantidad × precio unitario de los detalles
	Notes     string
	ActorID   string // usuario que registró el donativo
	CreatedAt time.Time

	Details []DonationDetail
}

// DonationDetail es una línea del donativo: enlaza el donativo con el lote
// creado y registra cantidad y precio unitario de valuación.
type DonationDetail struct {
	ID         string
	DonationID string
	LotID      string
	VariantID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
}
