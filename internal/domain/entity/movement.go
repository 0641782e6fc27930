package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement es un asiento del libro de inventario: un cambio de cantidad contra
// un lote, firmado por el factor de su tipo. El libro es append-only: los
// movimientos jamás se actualizan ni se borran; una corrección se registra
// como movimiento compensatorio.
type Movement struct {
	ID             string
	Seq            int64 // secuencia de inserción; desempata el orden de auditoría
	LotID          string
	VariantID      string // desnormalizado del lote para consultas por variante
	MovementTypeID string
	Quantity       decimal.Decimal // magnitud positiva; el signo vive en el factor del tipo
	Date           time.Time
	ActorID        string
	Reference      string // texto libre: "donativo_<id>", "venta_<id>", folio, etc.
}
