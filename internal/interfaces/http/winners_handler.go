package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
	"github.com/jhoicas/texas-lotto-api/internal/application/report"
)

// WinnersHandler expone los reportes de ganadores.
type WinnersHandler struct {
	uc  *report.WinnersUseCase
	log zerolog.Logger
}

// NewWinnersHandler construye el handler.
func NewWinnersHandler(uc *report.WinnersUseCase, log zerolog.Logger) *WinnersHandler {
	return &WinnersHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar ganadores
// @Tags         winners
// @Produce      json
// @Param        limit       query  int     false  "Límite"            default(100)
// @Param        offset      query  int     false  "Offset"            default(0)
// @Param        name        query  string  false  "Palabras del nombre (todas deben aparecer)"
// @Param        city        query  string  false  "Ciudad del reclamante"
// @Param        min_amount  query  number  false  "Importe mínimo"
// @Param        sort_by     query  string  false  "date|amount|name"  default(date)
// @Param        sort_order  query  string  false  "asc|desc"          default(desc)
// @Success      200  {object}  dto.WinnersListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/winners [get]
func (h *WinnersHandler) List(c *fiber.Ctx) error {
	var q dto.WinnersQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, h.log, "winners", err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, "winners", err)
	}
	return c.JSON(out)
}

// Top10 godoc
// @Summary      Los 10 premios más altos
// @Tags         winners
// @Produce      json
// @Success      200  {object}  dto.Top10Response
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/top10 [get]
func (h *WinnersHandler) Top10(c *fiber.Ctx) error {
	out, err := h.uc.Top10(c.UserContext())
	if err != nil {
		return respondError(c, h.log, "top10", err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de ganadores
// @Tags         winners
// @Produce      json
// @Success      200  {object}  dto.WinnerStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *WinnersHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, "stats", err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Premios de un jugador
// @Tags         winners
// @Produce      json
// @Param        player_id  path  string  true  "ID del jugador"
// @Success      200  {object}  dto.WinnerDetailsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/winner_details/{player_id} [get]
func (h *WinnersHandler) Details(c *fiber.Ctx) error {
	out, err := h.uc.Details(c.UserContext(), c.Params("player_id"))
	if err != nil {
		return respondError(c, h.log, "winner_details", err)
	}
	return c.JSON(out)
}
