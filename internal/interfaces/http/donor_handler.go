package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/application/usecase"
)

// DonorHandler CRUD de donadores (protegido).
type DonorHandler struct {
	uc *usecase.DonorUseCase
}

// NewDonorHandler construye el handler.
func NewDonorHandler(uc *usecase.DonorUseCase) *DonorHandler {
	return &DonorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar donador
// @Tags         donors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonorRequest  true  "name, type, contacto"
// @Success      201   {object}  dto.DonorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/donors [post]
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonorRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar donador
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del donador"
// @Success      200  {object}  dto.DonorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [get]
func (h *DonorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donador no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar donador
// @Tags         donors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del donador"
// @Param        body  body  dto.UpdateDonorRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.DonorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [put]
func (h *DonorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDonorRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donador no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar donadores
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DonorResponse
// @Router       /api/donors [get]
func (h *DonorHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
