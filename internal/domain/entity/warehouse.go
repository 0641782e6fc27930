package entity

import "time"

// Warehouse representa un almacén físico del comedor (bodega general, cocina, bazar).
type Warehouse struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
