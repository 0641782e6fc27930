// Package stock expone las consultas de existencias derivadas del libro de
// movimientos: por lote, por variante, por variante y almacén, y el resumen
// de entradas/salidas de un período.
package stock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/ledger"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
	"github.com/casa-esperanza/almacen-api/pkg/logger"
)

// QueryUseCase consultas de solo lectura sobre existencias y movimientos.
type QueryUseCase struct {
	lots      repository.LotRepository
	movements repository.MovementRepository
	types     repository.MovementTypeRepository
	log       *logger.Logger
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	lots repository.LotRepository,
	movements repository.MovementRepository,
	types repository.MovementTypeRepository,
	log *logger.Logger,
) *QueryUseCase {
	return &QueryUseCase{lots: lots, movements: movements, types: types, log: log}
}

func (uc *QueryUseCase) factorFor(movementTypeID string) (int, error) {
	t, err := uc.types.GetByID(movementTypeID)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, domain.ErrNotFound
	}
	return t.Factor, nil
}

// StockOfLot devuelve la existencia de un lote validando de paso que la caché
// coincide con el libro. Una discrepancia se registra y se propaga como
// violación de invariante (fallo duro, no se parchea).
func (uc *QueryUseCase) StockOfLot(lotID string) (decimal.Decimal, error) {
	lot, err := uc.lots.GetByID(lotID)
	if err != nil {
		return decimal.Zero, err
	}
	if lot == nil {
		return decimal.Zero, fmt.Errorf("lote %s: %w", lotID, domain.ErrNotFound)
	}
	movs, err := uc.movements.ListByLot(lotID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := ledger.CheckConsistency(lot, movs, uc.factorFor); err != nil {
		uc.log.Error().Err(err).Str("lote_id", lotID).Msg("invariante del libro de inventario violado")
		return decimal.Zero, err
	}
	return lot.CurrentQuantity, nil
}

// StockOfVariant suma las existencias de todos los lotes activos de una
// variante, sin importar el almacén.
func (uc *QueryUseCase) StockOfVariant(variantID string) (decimal.Decimal, error) {
	lots, err := uc.lots.ListActiveByVariant(variantID)
	if err != nil {
		return decimal.Zero, err
	}
	return sumCurrent(lots), nil
}

// StockOfVariantInWarehouse suma las existencias de los lotes activos de una
// variante dentro de un almacén.
func (uc *QueryUseCase) StockOfVariantInWarehouse(variantID, warehouseID string) (decimal.Decimal, error) {
	lots, err := uc.lots.ListActiveByVariantAndWarehouse(variantID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	return sumCurrent(lots), nil
}

func sumCurrent(lots []*entity.Lot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.CurrentQuantity)
	}
	return total
}

// PeriodSummary pliega los movimientos del rango por signo del factor:
// entradas, salidas (magnitud positiva) y neto.
func (uc *QueryUseCase) PeriodSummary(from, to time.Time) (ledger.Summary, error) {
	movs, err := uc.movements.ListByDateRange(from, to)
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(movs, uc.factorFor)
}

// ListMovements lista asientos del libro con filtros opcionales, en orden de
// auditoría (fecha DESC, secuencia DESC).
func (uc *QueryUseCase) ListMovements(filter repository.MovementFilter) ([]*entity.Movement, error) {
	return uc.movements.List(filter)
}

// ListAvailableLots lista lotes activos con existencias en un almacén
// (catálogo de la pantalla de bazar).
func (uc *QueryUseCase) ListAvailableLots(warehouseID string) ([]*entity.Lot, error) {
	return uc.lots.ListAvailable(warehouseID)
}
