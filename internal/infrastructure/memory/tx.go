package memory

import (
	"context"
	"sync"

	"github.com/casa-esperanza/almacen-api/internal/application/posting"
)

// TxRunner ejecuta la función transaccional sobre el Store con semántica de
// todo-o-nada: toma un snapshot, corre fn y restaura el snapshot si fn falla.
// Un mutex propio serializa las transacciones completas, lo que da la misma
// garantía que el SELECT ... FOR UPDATE de PostgreSQL: dos asientos
// concurrentes contra el mismo lote nunca se intercalan.
type TxRunner struct {
	txMu  sync.Mutex
	store *Store
}

// NewTxRunner crea un runner transaccional sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn dentro de una transacción en memoria.
func (t *TxRunner) Run(ctx context.Context, fn func(r posting.TxRepos) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	t.store.mu.Lock()
	snap := t.store.takeSnapshot()
	t.store.mu.Unlock()

	repos := posting.TxRepos{
		Lots:         t.store.Lots(),
		Movements:    t.store.Movements(),
		Donations:    t.store.Donations(),
		Sales:        t.store.Sales(),
		Consumptions: t.store.Consumptions(),
	}
	if err := fn(repos); err != nil {
		t.store.mu.Lock()
		t.store.restore(snap)
		t.store.mu.Unlock()
		return err
	}
	return nil
}
