package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// SaleHandler maneja las ventas del bazar (protegido).
type SaleHandler struct {
	coordinator *posting.Coordinator
	sales       repository.SaleRepository
}

// NewSaleHandler construye el handler.
func NewSaleHandler(coordinator *posting.Coordinator, sales repository.SaleRepository) *SaleHandler {
	return &SaleHandler{coordinator: coordinator, sales: sales}
}

// Create godoc
// @Summary      Registrar venta de bazar
// @Description  Descuenta cada lote con su fila bloqueada; stock insuficiente responde 409 sin efectos.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "warehouse_id, lines"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	lines := make([]posting.SaleLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, posting.SaleLine{
			LotID:     l.LotID,
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	sale, err := h.coordinator.PostSale(c.Context(), posting.SaleInput{
		WarehouseID: in.WarehouseID,
		ActorID:     GetActorID(c),
		Lines:       lines,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// GetByID godoc
// @Summary      Consultar venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.sales.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(toSaleResponse(sale))
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.sales.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return c.JSON(dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	details := make([]dto.SaleDetailResponse, 0, len(s.Details))
	for _, det := range s.Details {
		details = append(details, dto.SaleDetailResponse{
			ID:        det.ID,
			LotID:     det.LotID,
			VariantID: det.VariantID,
			Quantity:  det.Quantity,
			UnitPrice: det.UnitPrice,
		})
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		Date:        s.Date,
		Total:       s.Total,
		ActorID:     s.ActorID,
		WarehouseID: s.WarehouseID,
		Details:     details,
	}
}
