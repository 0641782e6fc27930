package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// MovementTypeRepository define el puerto del catálogo de tipos de movimiento.
// Dato de referencia de solo lectura para el motor; la siembra vive en la
// migración de base de datos.
type MovementTypeRepository interface {
	GetByID(id string) (*entity.MovementType, error)
	// GetByCode resuelve un tipo por su código semántico estable
	// (donation_in, bazaar_sale_out, ...). Nunca se busca por factor.
	GetByCode(code string) (*entity.MovementType, error)
	List() ([]*entity.MovementType, error)
}
