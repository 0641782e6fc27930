package repository

import (
	"time"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos de inventario.
// Campos vacíos / nil no filtran.
type MovementFilter struct {
	LotID          string
	VariantID      string
	MovementTypeID string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// MovementRepository define el puerto del libro de movimientos.
// Append-only: no existen Update ni Delete. Las lecturas ordenan por fecha
// descendente y, a igual fecha, por secuencia de inserción descendente, para
// que la vista de auditoría sea estable y determinista.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByLot(lotID string) ([]*entity.Movement, error)
	ListByVariant(variantID string) ([]*entity.Movement, error)
	ListByDateRange(from, to time.Time) ([]*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
}
