package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateVariantRequest entrada para crear una variante de producto.
type CreateVariantRequest struct {
	ProductID      string          `json:"product_id" validate:"required"`
	Brand          string          `json:"brand" validate:"max=200"`
	Presentation   string          `json:"presentation" validate:"required,min=1,max=200"`
	Unit           string          `json:"unit" validate:"required,min=1,max=20"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
}

// UpdateVariantRequest entrada para actualizar una variante. Las variantes con
// movimientos solo admiten baja lógica, no cambio de producto.
type UpdateVariantRequest struct {
	Brand          *string          `json:"brand" validate:"omitempty,max=200"`
	Presentation   *string          `json:"presentation" validate:"omitempty,min=1,max=200"`
	Unit           *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	ReferencePrice *decimal.Decimal `json:"reference_price"`
	Active         *bool            `json:"active"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Brand          string          `json:"brand"`
	Presentation   string          `json:"presentation"`
	Unit           string          `json:"unit"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
