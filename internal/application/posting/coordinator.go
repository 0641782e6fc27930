// Package posting implementa el coordinador de asientos: convierte eventos de
// negocio (donativo, venta de bazar, consumo de cocina, ajuste) en conjuntos
// consistentes de lotes y movimientos, todo o nada, dentro de una transacción.
package posting

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/ledger"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
	"github.com/casa-esperanza/almacen-api/pkg/logger"
)

// Coordinator orquesta los asientos multi-fila del libro de inventario.
//
// Reloj y generador de IDs son inyectables para que los tests sean
// deterministas; por defecto time.Now y UUIDs.
type Coordinator struct {
	tx         TxRunner
	types      repository.MovementTypeRepository
	variants   repository.VariantRepository
	warehouses repository.WarehouseRepository
	donors     repository.DonorRepository
	canApprove CapabilityFunc
	log        *logger.Logger

	Now   func() time.Time
	NewID func() string
}

// NewCoordinator construye el coordinador.
func NewCoordinator(
	tx TxRunner,
	types repository.MovementTypeRepository,
	variants repository.VariantRepository,
	warehouses repository.WarehouseRepository,
	donors repository.DonorRepository,
	canApprove CapabilityFunc,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		tx:         tx,
		types:      types,
		variants:   variants,
		warehouses: warehouses,
		donors:     donors,
		canApprove: canApprove,
		log:        log,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// resolveType resuelve un tipo de movimiento por código semántico.
func (c *Coordinator) resolveType(code string) (*entity.MovementType, error) {
	t, err := c.types.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("tipo de movimiento %q: %w", code, domain.ErrNotFound)
	}
	return t, nil
}

// factorFor adapta el catálogo de tipos a la firma de las proyecciones puras.
func (c *Coordinator) factorFor(movementTypeID string) (int, error) {
	t, err := c.types.GetByID(movementTypeID)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, domain.ErrNotFound
	}
	return t.Factor, nil
}

// assertLotConsistent re-deriva las existencias del lote desde el libro (misma
// transacción) y falla con InvariantViolationError si la caché no coincide.
// La violación se registra en el log antes de propagarse: es señal de
// corrupción, no un error de usuario.
func (c *Coordinator) assertLotConsistent(r TxRepos, lot *entity.Lot) error {
	movs, err := r.Movements.ListByLot(lot.ID)
	if err != nil {
		return err
	}
	if err := ledger.CheckConsistency(lot, movs, c.factorFor); err != nil {
		c.log.Error().Err(err).
			Str("lote_id", lot.ID).
			Str("cantidad_actual", lot.CurrentQuantity.String()).
			Msg("invariante del libro de inventario violado")
		return err
	}
	return nil
}

// debitLot descuenta existencias de un lote ya bloqueado: valida stock
// suficiente, registra el movimiento de salida y actualiza la caché. El caller
// debe haber obtenido el lote con GetForUpdate dentro de la transacción.
func (c *Coordinator) debitLot(
	r TxRepos,
	lot *entity.Lot,
	movType *entity.MovementType,
	quantity decimal.Decimal,
	actorID, reference string,
	date time.Time,
) (*entity.Movement, error) {
	if lot.CurrentQuantity.LessThan(quantity) {
		return nil, &domain.InsufficientStockError{
			LotID:     lot.ID,
			Requested: quantity,
			Available: lot.CurrentQuantity,
		}
	}
	mov := &entity.Movement{
		ID:             c.NewID(),
		LotID:          lot.ID,
		VariantID:      lot.VariantID,
		MovementTypeID: movType.ID,
		Quantity:       quantity,
		Date:           date,
		ActorID:        actorID,
		Reference:      reference,
	}
	if err := r.Movements.Create(mov); err != nil {
		return nil, err
	}
	lot.CurrentQuantity = lot.CurrentQuantity.Sub(quantity)
	if err := r.Lots.UpdateCurrentQuantity(lot.ID, lot.CurrentQuantity); err != nil {
		return nil, err
	}
	if err := c.assertLotConsistent(r, lot); err != nil {
		return nil, err
	}
	return mov, nil
}
