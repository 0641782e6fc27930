package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConsumptionRequest entrada para registrar un consumo de cocina.
type CreateConsumptionRequest struct {
	LotID    string          `json:"lot_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}

// ApproveConsumptionRequest entrada para aprobar un consumo pendiente.
// La firma vacía se sustituye por el texto por defecto.
type ApproveConsumptionRequest struct {
	Signature string `json:"signature" validate:"max=200"`
}

// ConsumptionResponse salida de un consumo de cocina.
type ConsumptionResponse struct {
	ID            string          `json:"id"`
	LotID         string          `json:"lot_id"`
	VariantID     string          `json:"variant_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Date          time.Time       `json:"date"`
	ResponsibleID string          `json:"responsible_id"`
	ApprovedBy    *string         `json:"approved_by,omitempty"`
	SignatureText *string         `json:"signature_text,omitempty"`
}
