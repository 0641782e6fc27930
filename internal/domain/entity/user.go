package entity

import "time"

// Roles de usuario. El motor de inventario no decide permisos por sí mismo:
// recibe el actor en cada operación y un chequeo de capacidad inyectado; estos
// roles alimentan ese chequeo desde la capa HTTP.
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador" // puede aprobar consumos de cocina
	RoleVoluntario  = "voluntario"
)

// User es un perfil de la aplicación: identidad del actor para el libro de
// movimientos y credenciales de acceso.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
