package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/application/reporting"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// DonationHandler maneja el registro y consulta de donativos (protegido).
type DonationHandler struct {
	coordinator *posting.Coordinator
	donations   repository.DonationRepository
	receipts    *reporting.ReceiptUseCase
}

// NewDonationHandler construye el handler.
func NewDonationHandler(
	coordinator *posting.Coordinator,
	donations repository.DonationRepository,
	receipts *reporting.ReceiptUseCase,
) *DonationHandler {
	return &DonationHandler{coordinator: coordinator, donations: donations, receipts: receipts}
}

// Create godoc
// @Summary      Registrar donativo
// @Description  Crea cabecera, lotes, movimientos de entrada y detalles en una sola transacción.
// @Tags         donations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonationRequest  true  "donor_id opcional, notes, lines"
// @Success      201   {object}  dto.DonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonationRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	lines := make([]posting.DonationLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, posting.DonationLine{
			VariantID:   l.VariantID,
			WarehouseID: l.WarehouseID,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			ExpiresAt:   l.ExpiresAt,
		})
	}
	donation, err := h.coordinator.PostDonation(c.Context(), posting.DonationInput{
		DonorID: in.DonorID,
		ActorID: GetActorID(c),
		Notes:   in.Notes,
		Lines:   lines,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDonationResponse(donation))
}

// GetByID godoc
// @Summary      Consultar donativo
// @Tags         donations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del donativo"
// @Success      200  {object}  dto.DonationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donations/{id} [get]
func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	donation, err := h.donations.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if donation == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donativo no encontrado"})
	}
	return c.JSON(toDonationResponse(donation))
}

// List godoc
// @Summary      Listar donativos
// @Tags         donations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.DonationListResponse
// @Router       /api/donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.donations.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.DonationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDonationResponse(d))
	}
	return c.JSON(dto.DonationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// Receipt godoc
// @Summary      Recibo del donativo en PDF
// @Tags         donations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del donativo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donations/{id}/receipt [get]
func (h *DonationHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipts.DonationReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo_donativo.pdf"`)
	return c.Send(pdfBytes)
}

func toDonationResponse(d *entity.Donation) *dto.DonationResponse {
	details := make([]dto.DonationDetailResponse, 0, len(d.Details))
	for _, det := range d.Details {
		details = append(details, dto.DonationDetailResponse{
			ID:        det.ID,
			LotID:     det.LotID,
			VariantID: det.VariantID,
			Quantity:  det.Quantity,
			UnitPrice: det.UnitPrice,
		})
	}
	return &dto.DonationResponse{
		ID:      d.ID,
		DonorID: d.DonorID,
		Date:    d.Date,
		Total:   d.Total,
		Notes:   d.Notes,
		ActorID: d.ActorID,
		Details: details,
	}
}
