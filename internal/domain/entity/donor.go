package entity

import "time"

// Donor representa a un donador (persona, empresa o institución).
// Independiente del libro de inventario; los donativos lo referencian.
type Donor struct {
	ID            string
	Name          string
	Type          string // persona, empresa, institucion
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
