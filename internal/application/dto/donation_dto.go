package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationLineRequest línea de un donativo entrante.
type DonationLineRequest struct {
	VariantID   string          `json:"variant_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ExpiresAt   *time.Time      `json:"expires_at"`
}

// CreateDonationRequest entrada para registrar un donativo completo.
type CreateDonationRequest struct {
	DonorID *string               `json:"donor_id"` // nil = anónimo
	Notes   string                `json:"notes" validate:"max=500"`
	Lines   []DonationLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// DonationDetailResponse línea de donativo con el lote que originó.
type DonationDetailResponse struct {
	ID        string          `json:"id"`
	LotID     string          `json:"lot_id"`
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// DonationResponse salida de un donativo.
type DonationResponse struct {
	ID      string                   `json:"id"`
	DonorID *string                  `json:"donor_id,omitempty"`
	Date    time.Time                `json:"date"`
	Total   decimal.Decimal          `json:"total"`
	Notes   string                   `json:"notes"`
	ActorID string                   `json:"actor_id"`
	Details []DonationDetailResponse `json:"details"`
}

// DonationListResponse lista paginada de donativos.
type DonationListResponse struct {
	Items []DonationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
