package entity

import "time"

// Product agrupa variantes de un mismo artículo (ej. "Arroz").
// Datos de referencia: se desactiva, nunca se borra si tiene variantes con movimientos.
type Product struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
