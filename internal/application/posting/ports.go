package posting

import (
	"context"

	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. El callback
// de TxRunner.Run los recibe ya construidos sobre la tx activa.
type TxRepos struct {
	Lots         repository.LotRepository
	Movements    repository.MovementRepository
	Donations    repository.DonationRepository
	Sales        repository.SaleRepository
	Consumptions repository.ConsumptionRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD. Garantiza la
// atomicidad de los asientos multi-fila: si fn devuelve error, nada de lo
// escrito dentro queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// CapabilityFunc decide si un actor puede aprobar consumos de cocina. El motor
// no implementa roles ni permisos: la capa externa inyecta este chequeo.
type CapabilityFunc func(actorID string) bool
