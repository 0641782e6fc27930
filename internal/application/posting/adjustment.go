package posting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// AdjustmentInput entrada para un ajuste manual de inventario. Quantity es
// firmada: positiva repone existencias (adjust_in), negativa las retira
// (adjust_out, merma). Reference documenta el motivo.
type AdjustmentInput struct {
	LotID     string
	Quantity  decimal.Decimal
	ActorID   string
	Reference string
}

// PostAdjustment registra una corrección manual contra un lote. Es también la
// vía para compensar un consumo registrado por error: no existe reverso
// automático, la corrección queda como asiento compensatorio explícito.
//
// Un ajuste de entrada no puede dejar el lote por encima de su cantidad
// original: el lote representa lo que físicamente entró; recibir más producto
// es un donativo o compra nueva, no un ajuste.
func (c *Coordinator) PostAdjustment(ctx context.Context, in AdjustmentInput) (*entity.Movement, error) {
	if in.Quantity.IsZero() {
		return nil, fmt.Errorf("la cantidad del ajuste no puede ser cero: %w", domain.ErrInvalidInput)
	}
	if in.ActorID == "" {
		return nil, fmt.Errorf("actor requerido: %w", domain.ErrInvalidInput)
	}
	if in.Reference == "" {
		return nil, fmt.Errorf("el ajuste requiere una referencia con el motivo: %w", domain.ErrInvalidInput)
	}

	code := entity.MovementCodeAdjustIn
	if in.Quantity.IsNegative() {
		code = entity.MovementCodeAdjustOut
	}
	adjType, err := c.resolveType(code)
	if err != nil {
		return nil, err
	}

	now := c.Now()
	magnitude := in.Quantity.Abs()
	var mov *entity.Movement

	err = c.tx.Run(ctx, func(r TxRepos) error {
		lot, err := r.Lots.GetForUpdate(in.LotID)
		if err != nil {
			return err
		}
		if lot == nil || !lot.Active {
			return fmt.Errorf("lote %s: %w", in.LotID, domain.ErrNotFound)
		}

		if adjType.IsEntry() {
			restored := lot.CurrentQuantity.Add(magnitude)
			if restored.GreaterThan(lot.OriginalQuantity) {
				return fmt.Errorf("el ajuste dejaría el lote %s por encima de su cantidad original (%s > %s): %w",
					lot.ID, restored.String(), lot.OriginalQuantity.String(), domain.ErrInvalidInput)
			}
			mov = &entity.Movement{
				ID:             c.NewID(),
				LotID:          lot.ID,
				VariantID:      lot.VariantID,
				MovementTypeID: adjType.ID,
				Quantity:       magnitude,
				Date:           now,
				ActorID:        in.ActorID,
				Reference:      in.Reference,
			}
			if err := r.Movements.Create(mov); err != nil {
				return err
			}
			lot.CurrentQuantity = restored
			if err := r.Lots.UpdateCurrentQuantity(lot.ID, lot.CurrentQuantity); err != nil {
				return err
			}
			return c.assertLotConsistent(r, lot)
		}

		mov, err = c.debitLot(r, lot, adjType, magnitude, in.ActorID, in.Reference, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
