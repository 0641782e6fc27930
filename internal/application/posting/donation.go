package posting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// DonationLine es una línea de donativo: una variante recibida en un almacén.
type DonationLine struct {
	VariantID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	ExpiresAt   *time.Time // fecha de caducidad opcional
}

// DonationInput entrada para registrar un donativo completo.
type DonationInput struct {
	DonorID *string // nil = donativo anónimo
	ActorID string
	Notes   string
	Lines   []DonationLine
}

// PostDonation registra un donativo: cabecera + por cada línea un lote, su
// movimiento de entrada y un detalle, todo en una sola transacción. Si
// cualquier escritura falla, no queda nada persistido.
//
// La validación ocurre completa antes de abrir la transacción: una entrada
// malformada jamás llega a escribir.
func (c *Coordinator) PostDonation(ctx context.Context, in DonationInput) (*entity.Donation, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("el donativo debe incluir al menos una línea: %w", domain.ErrInvalidInput)
	}
	if in.ActorID == "" {
		return nil, fmt.Errorf("actor requerido: %w", domain.ErrInvalidInput)
	}
	if in.DonorID != nil {
		donor, err := c.donors.GetByID(*in.DonorID)
		if err != nil {
			return nil, err
		}
		if donor == nil || !donor.Active {
			return nil, fmt.Errorf("donador %s: %w", *in.DonorID, domain.ErrNotFound)
		}
	}
	for i, line := range in.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %d: la cantidad debe ser mayor a cero: %w", i+1, domain.ErrInvalidInput)
		}
		if line.UnitCost.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %d: el costo unitario no puede ser negativo: %w", i+1, domain.ErrInvalidInput)
		}
		variant, err := c.variants.GetByID(line.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil || !variant.Active {
			return nil, fmt.Errorf("línea %d: variante %s: %w", i+1, line.VariantID, domain.ErrNotFound)
		}
		warehouse, err := c.warehouses.GetByID(line.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil || !warehouse.Active {
			return nil, fmt.Errorf("línea %d: almacén %s: %w", i+1, line.WarehouseID, domain.ErrNotFound)
		}
	}

	entryType, err := c.resolveType(entity.MovementCodeDonationIn)
	if err != nil {
		return nil, err
	}

	now := c.Now()
	total := decimal.Zero
	for _, line := range in.Lines {
		total = total.Add(line.Quantity.Mul(line.UnitCost))
	}

	donation := &entity.Donation{
		ID:        c.NewID(),
		DonorID:   in.DonorID,
		Date:      now,
		Total:     total,
		Notes:     in.Notes,
		ActorID:   in.ActorID,
		CreatedAt: now,
	}

	err = c.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Donations.CreateHeader(donation); err != nil {
			return err
		}
		for _, line := range in.Lines {
			lot := &entity.Lot{
				ID:               c.NewID(),
				VariantID:        line.VariantID,
				WarehouseID:      line.WarehouseID,
				DonationID:       &donation.ID,
				UnitCost:         line.UnitCost,
				OriginalQuantity: line.Quantity,
				CurrentQuantity:  line.Quantity,
				ReceivedAt:       now,
				ExpiresAt:        line.ExpiresAt,
				Active:           true,
			}
			if err := r.Lots.Create(lot); err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:             c.NewID(),
				LotID:          lot.ID,
				VariantID:      line.VariantID,
				MovementTypeID: entryType.ID,
				Quantity:       line.Quantity,
				Date:           now,
				ActorID:        in.ActorID,
				Reference:      "donativo_" + donation.ID,
			}
			if err := r.Movements.Create(mov); err != nil {
				return err
			}
			detail := &entity.DonationDetail{
				ID:         c.NewID(),
				DonationID: donation.ID,
				LotID:      lot.ID,
				VariantID:  line.VariantID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitCost,
			}
			if err := r.Donations.CreateDetail(detail); err != nil {
				return err
			}
			donation.Details = append(donation.Details, *detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return donation, nil
}
