package repository

import "github.com/casa-esperanza/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para perfiles de usuario.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	UpdateRole(id, role string) error
}
