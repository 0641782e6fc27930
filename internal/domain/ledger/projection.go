// Package ledger contiene las proyecciones puras del libro de inventario:
// derivar existencias plegando movimientos, validar la cantidad cacheada de un
// lote y resumir entradas/salidas de un período. Sin efectos secundarios; la
// resolución de factores se inyecta para no depender de persistencia.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// FactorFunc resuelve el factor (+1/-1) del tipo de movimiento indicado.
// Devuelve domain.ErrNotFound si el tipo es desconocido.
type FactorFunc func(movementTypeID string) (int, error)

// DerivedStock pliega los movimientos de un lote: Σ(cantidad × factor).
//
// El asiento de entrada con que nace el lote (donativo o ajuste) forma parte
// del libro, así que el pliegue parte de cero y la cantidad original queda
// registrada por ese primer movimiento. Para un lote sano el resultado es
// igual a CurrentQuantity y nunca excede OriginalQuantity.
func DerivedStock(movements []*entity.Movement, factorFor FactorFunc) (decimal.Decimal, error) {
	qty := decimal.Zero
	for _, m := range movements {
		factor, err := factorFor(m.MovementTypeID)
		if err != nil {
			return decimal.Zero, err
		}
		qty = qty.Add(m.Quantity.Mul(decimal.NewFromInt(int64(factor))))
	}
	return qty, nil
}

// CheckConsistency compara la cantidad cacheada del lote contra la derivada del
// libro. Una discrepancia es corrupción de datos: se devuelve como
// *domain.InvariantViolationError para que el caller la registre y falle duro,
// jamás se parchea en silencio.
func CheckConsistency(lot *entity.Lot, movements []*entity.Movement, factorFor FactorFunc) error {
	derived, err := DerivedStock(movements, factorFor)
	if err != nil {
		return err
	}
	if !derived.Equal(lot.CurrentQuantity) {
		return &domain.InvariantViolationError{
			LotID:   lot.ID,
			Cached:  lot.CurrentQuantity,
			Derived: derived,
		}
	}
	return nil
}

// Summary resume un conjunto de movimientos: entradas, salidas (en magnitud
// positiva) y neto = entradas - salidas.
type Summary struct {
	Entries decimal.Decimal
	Exits   decimal.Decimal
	Net     decimal.Decimal
}

// Summarize pliega movimientos por el signo del factor resuelto.
func Summarize(movements []*entity.Movement, factorFor FactorFunc) (Summary, error) {
	s := Summary{Entries: decimal.Zero, Exits: decimal.Zero, Net: decimal.Zero}
	for _, m := range movements {
		factor, err := factorFor(m.MovementTypeID)
		if err != nil {
			return Summary{}, err
		}
		if factor > 0 {
			s.Entries = s.Entries.Add(m.Quantity)
		} else {
			s.Exits = s.Exits.Add(m.Quantity)
		}
	}
	s.Net = s.Entries.Sub(s.Exits)
	return s, nil
}
