package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// ConsumptionRepository define el puerto de persistencia para consumos de cocina.
// Update solo se usa para asentar la aprobación (ApprovedBy + SignatureText);
// cantidad, lote y fecha son inmutables después del asiento.
type ConsumptionRepository interface {
	Create(consumption *entity.KitchenConsumption) error
	GetByID(id string) (*entity.KitchenConsumption, error)
	// GetForUpdate bloquea la fila para que dos aprobaciones concurrentes
	// no se pisen (la segunda debe fallar con ErrAlreadyApproved).
	GetForUpdate(id string) (*entity.KitchenConsumption, error)
	Update(consumption *entity.KitchenConsumption) error
	ListPending() ([]*entity.KitchenConsumption, error)
	ListByResponsible(responsibleID string) ([]*entity.KitchenConsumption, error)
}
