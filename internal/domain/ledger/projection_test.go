package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/ledger"
)

// factores de prueba: "in" suma, "out" resta.
func testFactor(movementTypeID string) (int, error) {
	switch movementTypeID {
	case "in":
		return entity.FactorEntry, nil
	case "out":
		return entity.FactorExit, nil
	}
	return 0, domain.ErrNotFound
}

func mov(typeID string, qty int64) *entity.Movement {
	return &entity.Movement{MovementTypeID: typeID, Quantity: decimal.NewFromInt(qty)}
}

func TestDerivedStock(t *testing.T) {
	movs := []*entity.Movement{mov("in", 10), mov("out", 4), mov("out", 3), mov("in", 2)}

	got, err := ledger.DerivedStock(movs, testFactor)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "10 - 4 - 3 + 2 = 5, obtuve %s", got)
}

func TestDerivedStockUnknownType(t *testing.T) {
	movs := []*entity.Movement{mov("in", 10), mov("transfer", 1)}

	_, err := ledger.DerivedStock(movs, testFactor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckConsistency(t *testing.T) {
	movs := []*entity.Movement{mov("in", 10), mov("out", 4)}

	lot := &entity.Lot{
		ID:               "lote-1",
		OriginalQuantity: decimal.NewFromInt(10),
		CurrentQuantity:  decimal.NewFromInt(6),
	}
	assert.NoError(t, ledger.CheckConsistency(lot, movs, testFactor))

	// Cantidad cacheada manipulada fuera del coordinador: corrupción detectable.
	lot.CurrentQuantity = decimal.NewFromInt(9)
	err := ledger.CheckConsistency(lot, movs, testFactor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	var viol *domain.InvariantViolationError
	require.ErrorAs(t, err, &viol)
	assert.Equal(t, "lote-1", viol.LotID)
	assert.True(t, viol.Cached.Equal(decimal.NewFromInt(9)))
	assert.True(t, viol.Derived.Equal(decimal.NewFromInt(6)))
}

func TestSummarize(t *testing.T) {
	movs := []*entity.Movement{mov("in", 10), mov("in", 5), mov("out", 4), mov("out", 2)}

	s, err := ledger.Summarize(movs, testFactor)
	require.NoError(t, err)
	assert.True(t, s.Entries.Equal(decimal.NewFromInt(15)))
	assert.True(t, s.Exits.Equal(decimal.NewFromInt(6)), "las salidas se reportan en magnitud positiva")
	assert.True(t, s.Net.Equal(decimal.NewFromInt(9)))
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := ledger.Summarize(nil, testFactor)
	require.NoError(t, err)
	assert.True(t, s.Entries.IsZero())
	assert.True(t, s.Exits.IsZero())
	assert.True(t, s.Net.IsZero())
}

// Propiedad: para cualquier conjunto de movimientos, Net == Entries - Exits y
// coincide con la suma firmada de las cantidades.
func TestSummarizeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		n := rng.Intn(40)
		movs := make([]*entity.Movement, 0, n)
		signed := decimal.Zero
		for j := 0; j < n; j++ {
			qty := decimal.NewFromInt(int64(rng.Intn(100) + 1))
			typeID := "in"
			factor := int64(1)
			if rng.Intn(2) == 0 {
				typeID = "out"
				factor = -1
			}
			movs = append(movs, &entity.Movement{MovementTypeID: typeID, Quantity: qty})
			signed = signed.Add(qty.Mul(decimal.NewFromInt(factor)))
		}

		s, err := ledger.Summarize(movs, testFactor)
		require.NoError(t, err)
		assert.True(t, s.Net.Equal(s.Entries.Sub(s.Exits)))
		assert.True(t, s.Net.Equal(signed))
	}
}
