package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/application/stock"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// InventoryHandler consultas de existencias, libro de movimientos y ajustes
// manuales (protegido).
type InventoryHandler struct {
	queries     *stock.QueryUseCase
	coordinator *posting.Coordinator
	types       repository.MovementTypeRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	queries *stock.QueryUseCase,
	coordinator *posting.Coordinator,
	types repository.MovementTypeRepository,
) *InventoryHandler {
	return &InventoryHandler{queries: queries, coordinator: coordinator, types: types}
}

// MovementTypes godoc
// @Summary      Catálogo de tipos de movimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementTypeResponse
// @Router       /api/inventory/movement-types [get]
func (h *InventoryHandler) MovementTypes(c *fiber.Ctx) error {
	list, err := h.types.List()
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.MovementTypeResponse{ID: t.ID, Code: t.Code, Name: t.Name, Factor: t.Factor})
	}
	return c.JSON(items)
}

// LotStock godoc
// @Summary      Existencias de un lote
// @Description  Verifica de paso la consistencia caché vs libro; una discrepancia responde 500.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/lots/{id}/stock [get]
func (h *InventoryHandler) LotStock(c *fiber.Ctx) error {
	lotID := c.Params("id")
	quantity, err := h.queries.StockOfLot(lotID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{LotID: lotID, Quantity: quantity})
}

// VariantStock godoc
// @Summary      Existencias de una variante
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID de la variante"
// @Param        warehouse_id  query  string  false  "limitar a un almacén"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/inventory/variants/{id}/stock [get]
func (h *InventoryHandler) VariantStock(c *fiber.Ctx) error {
	variantID := c.Params("id")
	warehouseID := c.Query("warehouse_id")
	var err error
	resp := dto.StockResponse{VariantID: variantID, WarehouseID: warehouseID}
	if warehouseID != "" {
		resp.Quantity, err = h.queries.StockOfVariantInWarehouse(variantID, warehouseID)
	} else {
		resp.Quantity, err = h.queries.StockOfVariant(variantID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AvailableLots godoc
// @Summary      Lotes con existencias disponibles
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "limitar a un almacén"
// @Success      200  {array}  dto.LotResponse
// @Router       /api/inventory/lots [get]
func (h *InventoryHandler) AvailableLots(c *fiber.Ctx) error {
	lots, err := h.queries.ListAvailableLots(c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		items = append(items, toLotResponse(lot))
	}
	return c.JSON(items)
}

// Movements godoc
// @Summary      Consultar el libro de movimientos
// @Description  Orden de auditoría: fecha descendente y, a igual fecha, secuencia descendente.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        lot_id            query  string  false  "filtrar por lote"
// @Param        variant_id        query  string  false  "filtrar por variante"
// @Param        movement_type_id  query  string  false  "filtrar por tipo"
// @Param        from              query  string  false  "desde (RFC 3339)"
// @Param        to                query  string  false  "hasta (RFC 3339)"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	in.DefaultPage()

	filter := repository.MovementFilter{
		LotID:          in.LotID,
		VariantID:      in.VariantID,
		MovementTypeID: in.MovementTypeID,
		Limit:          in.Limit,
		Offset:         in.Offset,
	}
	if in.From != "" {
		from, err := time.Parse(time.RFC3339, in.From)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse(time.RFC3339, in.To)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
		}
		filter.To = &to
	}

	movs, err := h.queries.ListMovements(filter)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, dto.MovementResponse{
			ID:             m.ID,
			LotID:          m.LotID,
			VariantID:      m.VariantID,
			MovementTypeID: m.MovementTypeID,
			Quantity:       m.Quantity,
			Date:           m.Date,
			ActorID:        m.ActorID,
			Reference:      m.Reference,
		})
	}
	return c.JSON(items)
}

// Summary godoc
// @Summary      Resumen de entradas/salidas de un período
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "desde (RFC 3339)"
// @Param        to    query  string  true  "hasta (RFC 3339)"
// @Success      200  {object}  dto.PeriodSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
	}
	summary, err := h.queries.PeriodSummary(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PeriodSummaryResponse{
		From:    from,
		To:      to,
		Entries: summary.Entries,
		Exits:   summary.Exits,
		Net:     summary.Net,
	})
}

// Adjust godoc
// @Summary      Ajuste manual de inventario
// @Description  Cantidad firmada: positiva repone (sin superar la cantidad original del lote), negativa retira. Solo admin y coordinador.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "lot_id, quantity firmada, reference"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	mov, err := h.coordinator.PostAdjustment(c.Context(), posting.AdjustmentInput{
		LotID:     in.LotID,
		Quantity:  in.Quantity,
		ActorID:   GetActorID(c),
		Reference: in.Reference,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:             mov.ID,
		LotID:          mov.LotID,
		VariantID:      mov.VariantID,
		MovementTypeID: mov.MovementTypeID,
		Quantity:       mov.Quantity,
		Date:           mov.Date,
		ActorID:        mov.ActorID,
		Reference:      mov.Reference,
	})
}

func toLotResponse(lot *entity.Lot) dto.LotResponse {
	return dto.LotResponse{
		ID:               lot.ID,
		VariantID:        lot.VariantID,
		WarehouseID:      lot.WarehouseID,
		DonationID:       lot.DonationID,
		UnitCost:         lot.UnitCost,
		OriginalQuantity: lot.OriginalQuantity,
		CurrentQuantity:  lot.CurrentQuantity,
		ReceivedAt:       lot.ReceivedAt,
		ExpiresAt:        lot.ExpiresAt,
	}
}
