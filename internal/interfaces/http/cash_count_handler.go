package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/pkg/validator"
)

const dateLayout = "2006-01-02"

// CashCountHandler maneja las peticiones HTTP de arqueos de caja y su bitácora.
type CashCountHandler struct {
	uc *usecase.CashCountUseCase
}

// NewCashCountHandler construye el handler.
func NewCashCountHandler(uc *usecase.CashCountUseCase) *CashCountHandler {
	return &CashCountHandler{uc: uc}
}

// List godoc
// @Summary      Listar arqueos de caja
// @Tags         cash-counts
// @Produce      json
// @Success      200  {array}  dto.CashCountResponse
// @Router       /api/cash-counts [get]
func (h *CashCountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar un arqueo de caja
// @Tags         cash-counts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashCountRequest  true  "Arqueo"
// @Success      201   {object}  dto.CashCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash-counts [post]
func (h *CashCountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validator.Validate(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByDate godoc
// @Summary      Arqueo de un día (YYYY-MM-DD)
// @Tags         cash-counts
// @Produce      json
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200  {object}  dto.CashCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-counts/date/{date} [get]
func (h *CashCountHandler) GetByDate(c *fiber.Ctx) error {
	day, err := time.Parse(dateLayout, c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "la fecha debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.GetByDay(day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay arqueo para esa fecha"})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Arqueos en un rango de fechas
// @Tags         cash-counts
// @Produce      json
// @Param        startDate  query  string  true  "Inicio YYYY-MM-DD"
// @Param        endDate    query  string  true  "Fin YYYY-MM-DD"
// @Success      200  {array}  dto.CashCountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cash-counts/history [get]
func (h *CashCountHandler) History(c *fiber.Ctx) error {
	start, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "startDate debe ser YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "endDate debe ser YYYY-MM-DD"})
	}
	// Incluir el día final completo.
	end = end.Add(24*time.Hour - time.Nanosecond)

	out, err := h.uc.History(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de un arqueo
// @Tags         cash-counts
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID del arqueo"
// @Param        body  body  map[string]any  true  "Campos a actualizar"
// @Success      200  {object}  dto.CashCountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-counts/{id} [patch]
func (h *CashCountHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "arqueo no encontrado"})
	}
	return c.JSON(out)
}

// Logs godoc
// @Summary      Bitácora de un arqueo
// @Tags         cash-count-logs
// @Produce      json
// @Param        cashCountId  path  string  true  "ID del arqueo"
// @Success      200  {array}  dto.CashCountLogResponse
// @Router       /api/cash-count-logs/{cashCountId} [get]
func (h *CashCountHandler) Logs(c *fiber.Ctx) error {
	out, err := h.uc.Logs(c.Params("cashCountId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddLog godoc
// @Summary      Registrar un asiento de bitácora
// @Tags         cash-count-logs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashCountLogRequest  true  "Asiento"
// @Success      201   {object}  dto.CashCountLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash-count-logs [post]
func (h *CashCountHandler) AddLog(c *fiber.Ctx) error {
	var in dto.CreateCashCountLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validator.Validate(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.AddLog(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
