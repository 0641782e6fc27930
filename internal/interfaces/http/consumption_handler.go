package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// ConsumptionHandler maneja consumos de cocina y su aprobación (protegido).
type ConsumptionHandler struct {
	coordinator  *posting.Coordinator
	consumptions repository.ConsumptionRepository
}

// NewConsumptionHandler construye el handler.
func NewConsumptionHandler(coordinator *posting.Coordinator, consumptions repository.ConsumptionRepository) *ConsumptionHandler {
	return &ConsumptionHandler{coordinator: coordinator, consumptions: consumptions}
}

// Create godoc
// @Summary      Registrar consumo de cocina
// @Description  Descuenta el lote y deja el consumo pendiente de aprobación.
// @Tags         consumptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsumptionRequest  true  "lot_id, quantity"
// @Success      201   {object}  dto.ConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumptions [post]
func (h *ConsumptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsumptionRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	consumption, err := h.coordinator.PostKitchenConsumption(c.Context(), posting.ConsumptionInput{
		LotID:    in.LotID,
		Quantity: in.Quantity,
		ActorID:  GetActorID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toConsumptionResponse(consumption))
}

// Approve godoc
// @Summary      Aprobar consumo pendiente
// @Description  Visto bueno administrativo: no modifica cantidades. Solo admin y coordinador.
// @Tags         consumptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumo"
// @Param        body  body  dto.ApproveConsumptionRequest  false  "signature opcional"
// @Success      200   {object}  dto.ConsumptionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumptions/{id}/approve [post]
func (h *ConsumptionHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveConsumptionRequest
	if len(c.Body()) > 0 && !parseAndValidate(c, &in) {
		return nil
	}
	consumption, err := h.coordinator.ApproveConsumption(c.Context(), c.Params("id"), GetActorID(c), in.Signature)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toConsumptionResponse(consumption))
}

// ListPending godoc
// @Summary      Listar consumos pendientes de aprobación
// @Tags         consumptions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsumptionResponse
// @Router       /api/consumptions/pending [get]
func (h *ConsumptionHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.consumptions.ListPending()
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.ConsumptionResponse, 0, len(list))
	for _, cons := range list {
		items = append(items, *toConsumptionResponse(cons))
	}
	return c.JSON(items)
}

// ListMine godoc
// @Summary      Listar consumos registrados por el actor autenticado
// @Tags         consumptions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsumptionResponse
// @Router       /api/consumptions/mine [get]
func (h *ConsumptionHandler) ListMine(c *fiber.Ctx) error {
	list, err := h.consumptions.ListByResponsible(GetActorID(c))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.ConsumptionResponse, 0, len(list))
	for _, cons := range list {
		items = append(items, *toConsumptionResponse(cons))
	}
	return c.JSON(items)
}

func toConsumptionResponse(cons *entity.KitchenConsumption) *dto.ConsumptionResponse {
	return &dto.ConsumptionResponse{
		ID:            cons.ID,
		LotID:         cons.LotID,
		VariantID:     cons.VariantID,
		Quantity:      cons.Quantity,
		Date:          cons.Date,
		ResponsibleID: cons.ResponsibleID,
		ApprovedBy:    cons.ApprovedBy,
		SignatureText: cons.SignatureText,
	}
}
