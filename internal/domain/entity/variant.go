package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant es una presentación concreta de un producto (marca + unidad de medida),
// la unidad sobre la que se controlan lotes y movimientos. Inmutable una vez que existen
// movimientos que la referencian: solo baja lógica (Active=false).
type ProductVariant struct {
	ID             string
	ProductID      string
	Brand          string
	Presentation   string          // ej. "bolsa 1kg", "lata 400g"
	Unit           string          // unidad de medida: kg, pza, lt
	ReferencePrice decimal.Decimal // precio unitario de referencia para valorar donativos
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
