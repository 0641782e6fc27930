package posting_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
	"github.com/casa-esperanza/almacen-api/internal/infrastructure/memory"
	"github.com/casa-esperanza/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testActorID    = "actor-voluntario-1"
	testApproverID = "actor-coordinador-1"
)

var testDate = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	coord *posting.Coordinator
}

// newFixture construye un coordinador sobre el store en memoria con un almacén
// y una variante activos ya sembrados, reloj fijo e IDs secuenciales.
func newFixture(t *testing.T, canApprove posting.CapabilityFunc) *fixture {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Warehouses().Create(&entity.Warehouse{
		ID: "alm-bodega", Name: "Bodega Central", Active: true,
	}))
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: "prod-arroz", Name: "Arroz", Active: true,
	}))
	require.NoError(t, store.Variants().Create(&entity.ProductVariant{
		ID: "var-arroz-1kg", ProductID: "prod-arroz", Presentation: "bolsa 1kg", Unit: "kg",
		ReferencePrice: decimal.NewFromInt(25), Active: true,
	}))

	coord := posting.NewCoordinator(
		memory.NewTxRunner(store),
		store.MovementTypes(),
		store.Variants(),
		store.Warehouses(),
		store.Donors(),
		canApprove,
		logger.Nop(),
	)
	coord.Now = func() time.Time { return testDate }
	var n int
	coord.NewID = func() string { n++; return fmt.Sprintf("id-%04d", n) }

	return &fixture{store: store, coord: coord}
}

// donate registra un donativo de una línea y devuelve el lote creado.
func (f *fixture) donate(t *testing.T, qty int64) *entity.Lot {
	t.Helper()
	donation, err := f.coord.PostDonation(context.Background(), posting.DonationInput{
		ActorID: testActorID,
		Lines: []posting.DonationLine{{
			VariantID:   "var-arroz-1kg",
			WarehouseID: "alm-bodega",
			Quantity:    decimal.NewFromInt(qty),
			UnitCost:    decimal.NewFromInt(10),
		}},
	})
	require.NoError(t, err)
	require.Len(t, donation.Details, 1)

	lot, err := f.store.Lots().GetByID(donation.Details[0].LotID)
	require.NoError(t, err)
	require.NotNil(t, lot)
	return lot
}

func (f *fixture) lotQuantity(t *testing.T, lotID string) decimal.Decimal {
	t.Helper()
	lot, err := f.store.Lots().GetByID(lotID)
	require.NoError(t, err)
	require.NotNil(t, lot)
	return lot.CurrentQuantity
}

func (f *fixture) allMovements(t *testing.T) []*entity.Movement {
	t.Helper()
	movs, err := f.store.Movements().List(repository.MovementFilter{})
	require.NoError(t, err)
	return movs
}

// ──────────────────────────────────────────────────────────────────────────────
// Donativos
// ──────────────────────────────────────────────────────────────────────────────

func TestPostDonationCreaLotesYMovimientos(t *testing.T) {
	f := newFixture(t, nil)

	donation, err := f.coord.PostDonation(context.Background(), posting.DonationInput{
		ActorID: testActorID,
		Notes:   "donativo de prueba",
		Lines: []posting.DonationLine{
			{VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(8)},
			{VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(5), UnitCost: decimal.NewFromInt(12)},
		},
	})
	require.NoError(t, err)
	require.Len(t, donation.Details, 2)
	// total = 10*8 + 5*12
	assert.True(t, donation.Total.Equal(decimal.NewFromInt(140)), "total %s", donation.Total)

	for _, det := range donation.Details {
		lot, err := f.store.Lots().GetByID(det.LotID)
		require.NoError(t, err)
		require.NotNil(t, lot)
		assert.True(t, lot.CurrentQuantity.Equal(lot.OriginalQuantity))
		require.NotNil(t, lot.DonationID)
		assert.Equal(t, donation.ID, *lot.DonationID)

		// el movimiento de entrada registra la cantidad original del lote
		movs, err := f.store.Movements().ListByLot(lot.ID)
		require.NoError(t, err)
		require.Len(t, movs, 1)
		assert.True(t, movs[0].Quantity.Equal(lot.OriginalQuantity))
		assert.Equal(t, "donativo_"+donation.ID, movs[0].Reference)
		assert.Equal(t, testActorID, movs[0].ActorID)
	}
}

func TestPostDonationValidaEntrada(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   posting.DonationInput
	}{
		{"sin lineas", posting.DonationInput{ActorID: testActorID}},
		{"sin actor", posting.DonationInput{Lines: []posting.DonationLine{{
			VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(1),
		}}}},
		{"cantidad cero", posting.DonationInput{ActorID: testActorID, Lines: []posting.DonationLine{{
			VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.Zero,
		}}}},
		{"cantidad negativa", posting.DonationInput{ActorID: testActorID, Lines: []posting.DonationLine{{
			VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(-3),
		}}}},
		{"costo negativo", posting.DonationInput{ActorID: testActorID, Lines: []posting.DonationLine{{
			VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega",
			Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(-1),
		}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.coord.PostDonation(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// referencias inexistentes
	_, err := f.coord.PostDonation(ctx, posting.DonationInput{
		ActorID: testActorID,
		Lines: []posting.DonationLine{{
			VariantID: "var-no-existe", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(1),
		}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// nada debió escribirse
	assert.Empty(t, f.allMovements(t))
}

func TestPostDonationValidaDonador(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	line := posting.DonationLine{
		VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega",
		Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(5),
	}

	// donador inexistente: mismo comportamiento que variante o almacén fantasma
	ghost := "donador-fantasma"
	_, err := f.coord.PostDonation(ctx, posting.DonationInput{
		DonorID: &ghost, ActorID: testActorID, Lines: []posting.DonationLine{line},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.allMovements(t))

	// donador registrado: el donativo lo referencia
	require.NoError(t, f.store.Donors().Create(&entity.Donor{
		ID: "don-vecina", Name: "Vecina solidaria", Type: "persona", Active: true,
	}))
	donorID := "don-vecina"
	donation, err := f.coord.PostDonation(ctx, posting.DonationInput{
		DonorID: &donorID, ActorID: testActorID, Lines: []posting.DonationLine{line},
	})
	require.NoError(t, err)
	require.NotNil(t, donation.DonorID)
	assert.Equal(t, donorID, *donation.DonorID)
}

// failingDonations envuelve el repo real y falla en la llamada n de CreateDetail.
type failingDonations struct {
	repository.DonationRepository
	failOn int
	calls  int
}

func (f *failingDonations) CreateDetail(d *entity.DonationDetail) error {
	f.calls++
	if f.calls == f.failOn {
		return errors.New("fallo inyectado")
	}
	return f.DonationRepository.CreateDetail(d)
}

// failInjectingRunner delega en el runner real sustituyendo repos del callback.
type failInjectingRunner struct {
	inner posting.TxRunner
	wrap  func(r posting.TxRepos) posting.TxRepos
}

func (fr *failInjectingRunner) Run(ctx context.Context, fn func(r posting.TxRepos) error) error {
	return fr.inner.Run(ctx, func(r posting.TxRepos) error {
		return fn(fr.wrap(r))
	})
}

func TestPostDonationAtomicoAnteFalloParcial(t *testing.T) {
	f := newFixture(t, nil)

	// falla al escribir el detalle de la segunda línea: la primera ya creó
	// lote y movimiento, todo debe deshacerse
	real := f.coord
	failing := posting.NewCoordinator(
		&failInjectingRunner{
			inner: memory.NewTxRunner(f.store),
			wrap: func(r posting.TxRepos) posting.TxRepos {
				r.Donations = &failingDonations{DonationRepository: r.Donations, failOn: 2}
				return r
			},
		},
		f.store.MovementTypes(), f.store.Variants(), f.store.Warehouses(),
		f.store.Donors(), nil, logger.Nop(),
	)
	failing.Now = real.Now
	failing.NewID = real.NewID

	_, err := failing.PostDonation(context.Background(), posting.DonationInput{
		ActorID: testActorID,
		Lines: []posting.DonationLine{
			{VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(4), UnitCost: decimal.NewFromInt(1)},
			{VariantID: "var-arroz-1kg", WarehouseID: "alm-bodega", Quantity: decimal.NewFromInt(6), UnitCost: decimal.NewFromInt(1)},
		},
	})
	require.Error(t, err)

	assert.Empty(t, f.allMovements(t), "ningún movimiento debe quedar persistido")
	lots, lerr := f.store.Lots().ListActiveByVariant("var-arroz-1kg")
	require.NoError(t, lerr)
	assert.Empty(t, lots, "ningún lote debe quedar persistido")
	donations, derr := f.store.Donations().List(0, 0)
	require.NoError(t, derr)
	assert.Empty(t, donations, "la cabecera del donativo debe deshacerse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas de bazar
// ──────────────────────────────────────────────────────────────────────────────

func TestPostSaleDescuentaLote(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)

	sale, err := f.coord.PostSale(context.Background(), posting.SaleInput{
		WarehouseID: "alm-bodega",
		ActorID:     testActorID,
		Lines: []posting.SaleLine{{
			LotID: lot.ID, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(20),
		}},
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(80)))
	require.Len(t, sale.Details, 1)

	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(6)))

	movs, err := f.store.Movements().ListByLot(lot.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	// orden de auditoría: el más reciente primero
	assert.Equal(t, "venta_"+sale.ID, movs[0].Reference)
}

func TestPostSaleStockInsuficienteNoDejaRastro(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 5)

	_, err := f.coord.PostSale(context.Background(), posting.SaleInput{
		WarehouseID: "alm-bodega",
		ActorID:     testActorID,
		Lines: []posting.SaleLine{{
			LotID: lot.ID, Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(20),
		}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, lot.ID, stockErr.LotID)
	assert.True(t, stockErr.Requested.Equal(decimal.NewFromInt(8)))
	assert.True(t, stockErr.Available.Equal(decimal.NewFromInt(5)))

	// el estado queda intacto: ni venta, ni movimiento de salida, ni descuento
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(5)))
	movs, merr := f.store.Movements().ListByLot(lot.ID)
	require.NoError(t, merr)
	assert.Len(t, movs, 1, "solo el movimiento de entrada del donativo")
	sales, serr := f.store.Sales().List(0, 0)
	require.NoError(t, serr)
	assert.Empty(t, sales)
}

func TestPostSaleAlmacenEquivocado(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.store.Warehouses().Create(&entity.Warehouse{
		ID: "alm-bazar", Name: "Bazar", Active: true,
	}))
	lot := f.donate(t, 5)

	_, err := f.coord.PostSale(context.Background(), posting.SaleInput{
		WarehouseID: "alm-bazar",
		ActorID:     testActorID,
		Lines: []posting.SaleLine{{
			LotID: lot.ID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20),
		}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(5)))
}

func TestVentasConcurrentesNoSobregiran(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)
	f.coord.NewID = func() string { return uuidLike() }

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, insufficient int

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.coord.PostSale(context.Background(), posting.SaleInput{
				WarehouseID: "alm-bodega",
				ActorID:     testActorID,
				Lines: []posting.SaleLine{{
					LotID: lot.ID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(1),
				}},
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	// 10 unidades entre ventas de 3: exactamente 3 ventas caben
	assert.Equal(t, 3, ok)
	assert.Equal(t, workers-3, insufficient)
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(1)),
		"quedan 10 - 3*3 = 1 unidades")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consumos de cocina y aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestPostKitchenConsumptionQuedaPendiente(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)

	consumption, err := f.coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(3), ActorID: testActorID,
	})
	require.NoError(t, err)
	assert.False(t, consumption.Approved())
	assert.Nil(t, consumption.ApprovedBy)

	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(7)),
		"el stock se descuenta al registrar, no al aprobar")

	pending, err := f.store.Consumptions().ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, consumption.ID, pending[0].ID)
}

func TestApproveConsumption(t *testing.T) {
	f := newFixture(t, func(actorID string) bool { return actorID == testApproverID })
	lot := f.donate(t, 10)

	consumption, err := f.coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(3), ActorID: testActorID,
	})
	require.NoError(t, err)
	before := f.lotQuantity(t, lot.ID)
	movsBefore := len(f.allMovements(t))

	approved, err := f.coord.ApproveConsumption(context.Background(), consumption.ID, testApproverID, "")
	require.NoError(t, err)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, testApproverID, *approved.ApprovedBy)
	require.NotNil(t, approved.SignatureText)
	assert.Equal(t, "Aprobado", *approved.SignatureText, "firma por defecto")

	// aprobar no toca ni cantidades ni el libro
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(before))
	assert.Len(t, f.allMovements(t), movsBefore)

	pending, err := f.store.Consumptions().ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApproveConsumptionDobleAprobacion(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)

	consumption, err := f.coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(2), ActorID: testActorID,
	})
	require.NoError(t, err)

	_, err = f.coord.ApproveConsumption(context.Background(), consumption.ID, testApproverID, "Firma original")
	require.NoError(t, err)

	_, err = f.coord.ApproveConsumption(context.Background(), consumption.ID, "otro-aprobador", "Firma intrusa")
	assert.ErrorIs(t, err, domain.ErrAlreadyApproved)

	// la primera firma sobrevive
	got, err := f.store.Consumptions().GetByID(consumption.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, testApproverID, *got.ApprovedBy)
	assert.Equal(t, "Firma original", *got.SignatureText)
}

func TestApproveConsumptionSinCapacidad(t *testing.T) {
	f := newFixture(t, func(actorID string) bool { return false })
	lot := f.donate(t, 10)

	consumption, err := f.coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(2), ActorID: testActorID,
	})
	require.NoError(t, err)

	_, err = f.coord.ApproveConsumption(context.Background(), consumption.ID, "actor-sin-permiso", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, gerr := f.store.Consumptions().GetByID(consumption.ID)
	require.NoError(t, gerr)
	assert.False(t, got.Approved())
}

func TestApproveConsumptionInexistente(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.coord.ApproveConsumption(context.Background(), "consumo-fantasma", testApproverID, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestPostAdjustmentSalida(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)

	mov, err := f.coord.PostAdjustment(context.Background(), posting.AdjustmentInput{
		LotID:     lot.ID,
		Quantity:  decimal.NewFromInt(-4),
		ActorID:   testActorID,
		Reference: "merma por caducidad",
	})
	require.NoError(t, err)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(4)), "el asiento registra la magnitud")
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(6)))
}

func TestPostAdjustmentEntradaCompensaConsumo(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)

	_, err := f.coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(3), ActorID: testActorID,
	})
	require.NoError(t, err)
	require.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(7)))

	// el consumo se registró por error: ajuste compensatorio de entrada
	_, err = f.coord.PostAdjustment(context.Background(), posting.AdjustmentInput{
		LotID:     lot.ID,
		Quantity:  decimal.NewFromInt(3),
		ActorID:   testApproverID,
		Reference: "compensa consumo registrado por error",
	})
	require.NoError(t, err)
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(10)))
}

func TestPostAdjustmentEntradaNoSuperaOriginal(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)

	_, err := f.coord.PostAdjustment(context.Background(), posting.AdjustmentInput{
		LotID:     lot.ID,
		Quantity:  decimal.NewFromInt(1),
		ActorID:   testActorID,
		Reference: "intento de inflar el lote",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(10)))
}

func TestPostAdjustmentValidaEntrada(t *testing.T) {
	f := newFixture(t, nil)
	lot := f.donate(t, 10)
	ctx := context.Background()

	_, err := f.coord.PostAdjustment(ctx, posting.AdjustmentInput{
		LotID: lot.ID, Quantity: decimal.Zero, ActorID: testActorID, Reference: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.coord.PostAdjustment(ctx, posting.AdjustmentInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(-1), ActorID: testActorID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin referencia")

	_, err = f.coord.PostAdjustment(ctx, posting.AdjustmentInput{
		LotID: "lote-fantasma", Quantity: decimal.NewFromInt(-1), ActorID: testActorID, Reference: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: donativo → venta → consumo
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloDonativoVentaConsumo(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	lot := f.donate(t, 10)

	_, err := f.coord.PostSale(ctx, posting.SaleInput{
		WarehouseID: "alm-bodega",
		ActorID:     testActorID,
		Lines: []posting.SaleLine{{
			LotID: lot.ID, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(15),
		}},
	})
	require.NoError(t, err)

	_, err = f.coord.PostKitchenConsumption(ctx, posting.ConsumptionInput{
		LotID: lot.ID, Quantity: decimal.NewFromInt(3), ActorID: testActorID,
	})
	require.NoError(t, err)

	// 10 - 4 - 3 = 3
	assert.True(t, f.lotQuantity(t, lot.ID).Equal(decimal.NewFromInt(3)))

	movs, err := f.store.Movements().ListByLot(lot.ID)
	require.NoError(t, err)
	assert.Len(t, movs, 3, "entrada + venta + consumo")
}

var uuidCounter struct {
	sync.Mutex
	n int
}

// uuidLike genera IDs únicos seguros para goroutines concurrentes.
func uuidLike() string {
	uuidCounter.Lock()
	defer uuidCounter.Unlock()
	uuidCounter.n++
	return fmt.Sprintf("cc-%06d", uuidCounter.n)
}
