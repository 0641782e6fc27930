package posting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// SaleLine es una línea de venta contra un lote concreto.
type SaleLine struct {
	LotID     string
	VariantID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// SaleInput entrada para registrar una venta de bazar.
type SaleInput struct {
	WarehouseID string
	ActorID     string
	Lines       []SaleLine
}

// PostSale registra una venta de bazar: cabecera + detalles + un movimiento de
// salida por línea + descuento de cada lote, en una sola transacción.
//
// El chequeo de stock y el descuento ocurren con la fila del lote bloqueada
// (GetForUpdate), de modo que dos ventas concurrentes sobre el mismo lote no
// pueden leer ambas "stock suficiente" y sobregirar: la segunda espera el lock
// y valida contra la cantidad ya descontada.
func (c *Coordinator) PostSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("la venta debe incluir al menos una línea: %w", domain.ErrInvalidInput)
	}
	if in.ActorID == "" || in.WarehouseID == "" {
		return nil, fmt.Errorf("actor y almacén requeridos: %w", domain.ErrInvalidInput)
	}
	for i, line := range in.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %d: la cantidad debe ser mayor a cero: %w", i+1, domain.ErrInvalidInput)
		}
		if line.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %d: el precio unitario no puede ser negativo: %w", i+1, domain.ErrInvalidInput)
		}
	}

	exitType, err := c.resolveType(entity.MovementCodeBazaarSaleOut)
	if err != nil {
		return nil, err
	}

	now := c.Now()
	total := decimal.Zero
	for _, line := range in.Lines {
		total = total.Add(line.Quantity.Mul(line.UnitPrice))
	}

	sale := &entity.Sale{
		ID:          c.NewID(),
		Date:        now,
		Total:       total,
		ActorID:     in.ActorID,
		WarehouseID: in.WarehouseID,
		CreatedAt:   now,
	}

	err = c.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Sales.CreateHeader(sale); err != nil {
			return err
		}
		for i, line := range in.Lines {
			lot, err := r.Lots.GetForUpdate(line.LotID)
			if err != nil {
				return err
			}
			if lot == nil || !lot.Active {
				return fmt.Errorf("línea %d: lote %s: %w", i+1, line.LotID, domain.ErrNotFound)
			}
			if lot.WarehouseID != in.WarehouseID {
				return fmt.Errorf("línea %d: el lote %s no pertenece al almacén %s: %w",
					i+1, line.LotID, in.WarehouseID, domain.ErrInvalidInput)
			}
			if line.VariantID != "" && line.VariantID != lot.VariantID {
				return fmt.Errorf("línea %d: la variante no coincide con la del lote: %w", i+1, domain.ErrInvalidInput)
			}
			reference := "venta_" + sale.ID
			if _, err := c.debitLot(r, lot, exitType, line.Quantity, in.ActorID, reference, now); err != nil {
				return err
			}
			detail := &entity.SaleDetail{
				ID:        c.NewID(),
				SaleID:    sale.ID,
				LotID:     line.LotID,
				VariantID: lot.VariantID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			if err := r.Sales.CreateDetail(detail); err != nil {
				return err
			}
			sale.Details = append(sale.Details, *detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
