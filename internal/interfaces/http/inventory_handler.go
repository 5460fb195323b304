package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
	"github.com/tu-usuario/almacen-pos/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP de los conteos de inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar conteos de inventario
// @Tags         inventory-counts
// @Produce      json
// @Success      200  {array}  dto.InventoryCountResponse
// @Router       /api/inventory-counts [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Registrar un conteo de inventario
// @Tags         inventory-counts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryCountRequest  true  "Conteo"
// @Success      201   {object}  dto.InventoryCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory-counts [post]
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateInventoryCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validator.Validate(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Latest godoc
// @Summary      Conteo más reciente de un producto
// @Tags         inventory-counts
// @Produce      json
// @Param        eanCode  path  string  true  "Código EAN"
// @Success      200  {object}  dto.InventoryCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory-counts/latest/{eanCode} [get]
func (h *InventoryHandler) Latest(c *fiber.Ctx) error {
	eanCode := c.Params("eanCode")
	if eanCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EAN", Message: "ean_code es requerido"})
	}
	out, err := h.uc.Latest(eanCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		// 404 aquí significa "sin conteos", no un fallo: el cliente lo trata
		// como resultado vacío.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no tiene conteos"})
	}
	return c.JSON(out)
}
