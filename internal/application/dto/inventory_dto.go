package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentRequest entrada para un ajuste manual. Quantity firmada: positiva
// repone, negativa retira. Reference documenta el motivo y es obligatoria.
type AdjustmentRequest struct {
	LotID     string          `json:"lot_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Reference string          `json:"reference" validate:"required,min=1,max=300"`
}

// StockResponse existencias de un lote o variante.
type StockResponse struct {
	LotID       string          `json:"lot_id,omitempty"`
	VariantID   string          `json:"variant_id,omitempty"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID               string          `json:"id"`
	VariantID        string          `json:"variant_id"`
	WarehouseID      string          `json:"warehouse_id"`
	DonationID       *string         `json:"donation_id,omitempty"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	OriginalQuantity decimal.Decimal `json:"original_quantity"`
	CurrentQuantity  decimal.Decimal `json:"current_quantity"`
	ReceivedAt       time.Time       `json:"received_at"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
}

// MovementResponse asiento del libro de movimientos.
type MovementResponse struct {
	ID             string          `json:"id"`
	LotID          string          `json:"lot_id"`
	VariantID      string          `json:"variant_id"`
	MovementTypeID string          `json:"movement_type_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Date           time.Time       `json:"date"`
	ActorID        string          `json:"actor_id"`
	Reference      string          `json:"reference"`
}

// MovementListRequest filtros de consulta del libro.
type MovementListRequest struct {
	LotID          string `query:"lot_id"`
	VariantID      string `query:"variant_id"`
	MovementTypeID string `query:"movement_type_id"`
	From           string `query:"from"` // RFC 3339
	To             string `query:"to"`
	PageRequest
}

// MovementTypeResponse tipo de movimiento del catálogo de referencia.
type MovementTypeResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Factor int    `json:"factor"`
}

// PeriodSummaryResponse resumen de entradas/salidas de un período.
type PeriodSummaryResponse struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Entries decimal.Decimal `json:"entries"`
	Exits   decimal.Decimal `json:"exits"`
	Net     decimal.Decimal `json:"net"`
}
