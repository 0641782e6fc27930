package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de venta contra un lote concreto.
type SaleLineRequest struct {
	LotID     string          `json:"lot_id" validate:"required"`
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para registrar una venta de bazar.
type CreateSaleRequest struct {
	WarehouseID string            `json:"warehouse_id" validate:"required"`
	Lines       []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SaleDetailResponse línea de una venta.
type SaleDetailResponse struct {
	ID        string          `json:"id"`
	LotID     string          `json:"lot_id"`
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleResponse salida de una venta de bazar.
type SaleResponse struct {
	ID          string               `json:"id"`
	Date        time.Time            `json:"date"`
	Total       decimal.Decimal      `json:"total"`
	ActorID     string               `json:"actor_id"`
	WarehouseID string               `json:"warehouse_id"`
	Details     []SaleDetailResponse `json:"details"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
