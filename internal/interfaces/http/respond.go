package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
)

// respondError registra el fallo y responde 500 con {"error": "<mensaje>"}.
// Los parámetros mal formados también terminan aquí: la API no distingue errores 4xx.
func respondError(c *fiber.Ctx, log zerolog.Logger, endpoint string, err error) error {
	log.Error().
		Err(err).
		Str("endpoint", endpoint).
		Str("request_id", requestID(c)).
		Msg("error en reporte")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
