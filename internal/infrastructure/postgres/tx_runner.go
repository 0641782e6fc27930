package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casa-esperanza/almacen-api/internal/application/posting"
)

var _ posting.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta los asientos del coordinador dentro de una transacción
// PostgreSQL: Begin, repos atados a la tx, Commit o Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit; cualquier error de fn provoca Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos posting.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := posting.TxRepos{
		Lots:         NewLotRepository(tx),
		Movements:    NewMovementRepository(tx),
		Donations:    NewDonationRepository(tx),
		Sales:        NewSaleRepository(tx),
		Consumptions: NewConsumptionRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
