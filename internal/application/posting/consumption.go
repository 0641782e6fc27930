package posting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// ConsumptionInput entrada para registrar un consumo de cocina.
type ConsumptionInput struct {
	LotID    string
	Quantity decimal.Decimal
	ActorID  string // responsable que retira el producto
}

// PostKitchenConsumption registra un consumo de cocina: un movimiento de
// salida + descuento del lote + el registro de consumo en estado pendiente,
// en una sola transacción. El stock se descuenta aquí; la aprobación posterior
// es solo un visto bueno.
func (c *Coordinator) PostKitchenConsumption(ctx context.Context, in ConsumptionInput) (*entity.KitchenConsumption, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("la cantidad debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}
	if in.ActorID == "" {
		return nil, fmt.Errorf("responsable requerido: %w", domain.ErrInvalidInput)
	}

	exitType, err := c.resolveType(entity.MovementCodeKitchenOut)
	if err != nil {
		return nil, err
	}

	now := c.Now()
	var consumption *entity.KitchenConsumption

	err = c.tx.Run(ctx, func(r TxRepos) error {
		lot, err := r.Lots.GetForUpdate(in.LotID)
		if err != nil {
			return err
		}
		if lot == nil || !lot.Active {
			return fmt.Errorf("lote %s: %w", in.LotID, domain.ErrNotFound)
		}
		consumption = &entity.KitchenConsumption{
			ID:            c.NewID(),
			LotID:         lot.ID,
			VariantID:     lot.VariantID,
			Quantity:      in.Quantity,
			Date:          now,
			ResponsibleID: in.ActorID,
			CreatedAt:     now,
		}
		reference := "consumo_" + consumption.ID
		if _, err := c.debitLot(r, lot, exitType, in.Quantity, in.ActorID, reference, now); err != nil {
			return err
		}
		return r.Consumptions.Create(consumption)
	})
	if err != nil {
		return nil, err
	}
	return consumption, nil
}

// ApproveConsumption asienta el visto bueno de un consumo pendiente.
//
// El chequeo de capacidad del aprobador es inyectado (el motor no conoce
// roles). Aprobar no toca el libro: el stock ya se descontó al registrar.
// Un segundo intento falla con ErrAlreadyApproved sin alterar la firma
// original.
func (c *Coordinator) ApproveConsumption(ctx context.Context, consumptionID, approverID, signature string) (*entity.KitchenConsumption, error) {
	if approverID == "" {
		return nil, fmt.Errorf("aprobador requerido: %w", domain.ErrInvalidInput)
	}
	if c.canApprove != nil && !c.canApprove(approverID) {
		return nil, fmt.Errorf("el actor %s no puede aprobar consumos: %w", approverID, domain.ErrForbidden)
	}
	if signature == "" {
		signature = "Aprobado"
	}

	var approved *entity.KitchenConsumption
	err := c.tx.Run(ctx, func(r TxRepos) error {
		consumption, err := r.Consumptions.GetForUpdate(consumptionID)
		if err != nil {
			return err
		}
		if consumption == nil {
			return fmt.Errorf("consumo %s: %w", consumptionID, domain.ErrNotFound)
		}
		if consumption.Approved() {
			return domain.ErrAlreadyApproved
		}
		consumption.ApprovedBy = &approverID
		consumption.SignatureText = &signature
		if err := r.Consumptions.Update(consumption); err != nil {
			return err
		}
		approved = consumption
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}
