package stock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/application/stock"
	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
	"github.com/casa-esperanza/almacen-api/internal/infrastructure/memory"
	"github.com/casa-esperanza/almacen-api/pkg/logger"
)

var baseDate = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// newQueryFixture siembra catálogo, construye coordinador y caso de uso de
// consulta sobre el mismo store.
func newQueryFixture(t *testing.T) (*memory.Store, *posting.Coordinator, *stock.QueryUseCase) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Warehouses().Create(&entity.Warehouse{ID: "alm-bodega", Name: "Bodega", Active: true}))
	require.NoError(t, store.Warehouses().Create(&entity.Warehouse{ID: "alm-bazar", Name: "Bazar", Active: true}))
	require.NoError(t, store.Products().Create(&entity.Product{ID: "prod-frijol", Name: "Frijol", Active: true}))
	require.NoError(t, store.Variants().Create(&entity.ProductVariant{
		ID: "var-frijol", ProductID: "prod-frijol", Presentation: "bolsa 1kg", Unit: "kg", Active: true,
	}))

	log := logger.Nop()
	coord := posting.NewCoordinator(
		memory.NewTxRunner(store),
		store.MovementTypes(), store.Variants(), store.Warehouses(),
		store.Donors(), nil, log,
	)
	coord.Now = func() time.Time { return baseDate }
	var n int
	coord.NewID = func() string { n++; return fmt.Sprintf("q-%04d", n) }

	uc := stock.NewQueryUseCase(store.Lots(), store.Movements(), store.MovementTypes(), log)
	return store, coord, uc
}

func donateInto(t *testing.T, coord *posting.Coordinator, warehouseID string, qty int64) string {
	t.Helper()
	donation, err := coord.PostDonation(context.Background(), posting.DonationInput{
		ActorID: "actor-1",
		Lines: []posting.DonationLine{{
			VariantID: "var-frijol", WarehouseID: warehouseID,
			Quantity: decimal.NewFromInt(qty), UnitCost: decimal.NewFromInt(5),
		}},
	})
	require.NoError(t, err)
	return donation.Details[0].LotID
}

func TestStockOfLot(t *testing.T) {
	_, coord, uc := newQueryFixture(t)
	lotID := donateInto(t, coord, "alm-bodega", 10)

	_, err := coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lotID, Quantity: decimal.NewFromInt(3), ActorID: "actor-1",
	})
	require.NoError(t, err)

	got, err := uc.StockOfLot(lotID)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(7)))
}

func TestStockOfLotInexistente(t *testing.T) {
	_, _, uc := newQueryFixture(t)
	_, err := uc.StockOfLot("lote-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockOfLotDetectaCacheCorrupta(t *testing.T) {
	store, coord, uc := newQueryFixture(t)
	lotID := donateInto(t, coord, "alm-bodega", 10)

	// corromper la caché por fuera del coordinador
	require.NoError(t, store.Lots().UpdateCurrentQuantity(lotID, decimal.NewFromInt(99)))

	_, err := uc.StockOfLot(lotID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	var viol *domain.InvariantViolationError
	require.ErrorAs(t, err, &viol)
	assert.Equal(t, lotID, viol.LotID)
	assert.True(t, viol.Cached.Equal(decimal.NewFromInt(99)))
	assert.True(t, viol.Derived.Equal(decimal.NewFromInt(10)))
}

func TestStockOfVariantSumaLotes(t *testing.T) {
	_, coord, uc := newQueryFixture(t)
	donateInto(t, coord, "alm-bodega", 10)
	donateInto(t, coord, "alm-bazar", 4)

	total, err := uc.StockOfVariant("var-frijol")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(14)))

	bodega, err := uc.StockOfVariantInWarehouse("var-frijol", "alm-bodega")
	require.NoError(t, err)
	assert.True(t, bodega.Equal(decimal.NewFromInt(10)))

	bazar, err := uc.StockOfVariantInWarehouse("var-frijol", "alm-bazar")
	require.NoError(t, err)
	assert.True(t, bazar.Equal(decimal.NewFromInt(4)))
}

func TestPeriodSummary(t *testing.T) {
	_, coord, uc := newQueryFixture(t)
	lotID := donateInto(t, coord, "alm-bodega", 10)

	_, err := coord.PostSale(context.Background(), posting.SaleInput{
		WarehouseID: "alm-bodega", ActorID: "actor-1",
		Lines: []posting.SaleLine{{
			LotID: lotID, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(12),
		}},
	})
	require.NoError(t, err)

	summary, err := uc.PeriodSummary(baseDate.Add(-time.Hour), baseDate.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, summary.Entries.Equal(decimal.NewFromInt(10)))
	assert.True(t, summary.Exits.Equal(decimal.NewFromInt(4)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(6)))

	// fuera del rango: vacío
	empty, err := uc.PeriodSummary(baseDate.Add(24*time.Hour), baseDate.Add(48*time.Hour))
	require.NoError(t, err)
	assert.True(t, empty.Net.IsZero())
}

func TestListMovementsOrdenAuditoria(t *testing.T) {
	_, coord, uc := newQueryFixture(t)
	day := 0
	coord.Now = func() time.Time { day++; return baseDate.AddDate(0, 0, day) }

	lotID := donateInto(t, coord, "alm-bodega", 10)
	_, err := coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lotID, Quantity: decimal.NewFromInt(1), ActorID: "actor-1",
	})
	require.NoError(t, err)
	_, err = coord.PostKitchenConsumption(context.Background(), posting.ConsumptionInput{
		LotID: lotID, Quantity: decimal.NewFromInt(2), ActorID: "actor-1",
	})
	require.NoError(t, err)

	movs, err := uc.ListMovements(repository.MovementFilter{LotID: lotID})
	require.NoError(t, err)
	require.Len(t, movs, 3)
	for i := 1; i < len(movs); i++ {
		assert.False(t, movs[i].Date.After(movs[i-1].Date), "fecha descendente")
	}
	assert.True(t, movs[0].Quantity.Equal(decimal.NewFromInt(2)), "el más reciente primero")

	limited, err := uc.ListMovements(repository.MovementFilter{LotID: lotID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.True(t, limited[0].Quantity.Equal(decimal.NewFromInt(1)))
}

func TestListAvailableLots(t *testing.T) {
	_, coord, uc := newQueryFixture(t)
	full := donateInto(t, coord, "alm-bazar", 5)
	drained := donateInto(t, coord, "alm-bazar", 2)

	// vaciar el segundo lote
	_, err := coord.PostSale(context.Background(), posting.SaleInput{
		WarehouseID: "alm-bazar", ActorID: "actor-1",
		Lines: []posting.SaleLine{{
			LotID: drained, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1),
		}},
	})
	require.NoError(t, err)

	lots, err := uc.ListAvailableLots("alm-bazar")
	require.NoError(t, err)
	require.Len(t, lots, 1, "los lotes en cero no se ofrecen")
	assert.Equal(t, full, lots[0].ID)
}
