// Package reporting arma los datos del recibo de donativo y delega el
// dibujado del PDF a un generador inyectado.
package reporting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// ReceiptLine línea del recibo, ya resuelta a texto presentable.
type ReceiptLine struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptData datos completos para dibujar un recibo de donativo.
type ReceiptData struct {
	Donation  *entity.Donation
	DonorName string // "Donador anónimo" si el donativo no tiene donador
	Lines     []ReceiptLine
}

// ReceiptPDFGenerator dibuja el recibo y devuelve los bytes del PDF.
type ReceiptPDFGenerator interface {
	GenerateDonationReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}

// ReceiptUseCase caso de uso: recibo en PDF de un donativo registrado.
type ReceiptUseCase struct {
	donations repository.DonationRepository
	donors    repository.DonorRepository
	variants  repository.VariantRepository
	products  repository.ProductRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	donations repository.DonationRepository,
	donors repository.DonorRepository,
	variants repository.VariantRepository,
	products repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		donations: donations,
		donors:    donors,
		variants:  variants,
		products:  products,
		generator: generator,
	}
}

// DonationReceipt genera el PDF del recibo de un donativo.
func (uc *ReceiptUseCase) DonationReceipt(ctx context.Context, donationID string) ([]byte, error) {
	donation, err := uc.donations.GetByID(donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, fmt.Errorf("donativo %s: %w", donationID, domain.ErrNotFound)
	}

	donorName := "Donador anónimo"
	if donation.DonorID != nil {
		donor, err := uc.donors.GetByID(*donation.DonorID)
		if err != nil {
			return nil, err
		}
		if donor != nil {
			donorName = donor.Name
		}
	}

	lines := make([]ReceiptLine, 0, len(donation.Details))
	for _, det := range donation.Details {
		lines = append(lines, ReceiptLine{
			Description: uc.describeVariant(det.VariantID),
			Quantity:    det.Quantity,
			Unit:        uc.variantUnit(det.VariantID),
			UnitPrice:   det.UnitPrice,
			Subtotal:    det.Quantity.Mul(det.UnitPrice),
		})
	}

	return uc.generator.GenerateDonationReceipt(ctx, ReceiptData{
		Donation:  donation,
		DonorName: donorName,
		Lines:     lines,
	})
}

// describeVariant compone "Producto, Marca, Presentación" lo mejor que pueda;
// el recibo no falla por una variante dada de baja.
func (uc *ReceiptUseCase) describeVariant(variantID string) string {
	variant, err := uc.variants.GetByID(variantID)
	if err != nil || variant == nil {
		return variantID
	}
	desc := variant.Presentation
	if variant.Brand != "" {
		desc = variant.Brand + " " + desc
	}
	if product, err := uc.products.GetByID(variant.ProductID); err == nil && product != nil {
		desc = product.Name + " " + desc
	}
	return desc
}

func (uc *ReceiptUseCase) variantUnit(variantID string) string {
	variant, err := uc.variants.GetByID(variantID)
	if err != nil || variant == nil {
		return ""
	}
	return variant.Unit
}
