package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
	"github.com/jhoicas/texas-lotto-api/internal/application/report"
)

// SalesHandler expone los reportes de ventas por minorista.
type SalesHandler struct {
	uc  *report.SalesUseCase
	log zerolog.Logger
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *report.SalesUseCase, log zerolog.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Ventas agregadas por minorista
// @Tags         sales
// @Produce      json
// @Param        limit        query  int     false  "Límite"                 default(100)
// @Param        offset       query  int     false  "Offset"                 default(0)
// @Param        retailer     query  string  false  "Nombre del minorista"
// @Param        city         query  string  false  "Ciudad del minorista"
// @Param        fiscal_year  query  string  false  "Año fiscal exacto"
// @Param        sort_by      query  string  false  "sales|retailer|date"    default(sales)
// @Param        sort_order   query  string  false  "asc|desc"               default(desc)
// @Success      200  {object}  dto.SalesListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var q dto.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, h.log, "sales", err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, "sales", err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Totales de ventas por año fiscal
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SalesStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales/stats [get]
func (h *SalesHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, "sales_stats", err)
	}
	return c.JSON(out)
}
