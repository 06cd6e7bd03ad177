package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
)

// NewApp crea la aplicación Fiber con el manejador de errores JSON y los middlewares comunes
// (recover, X-Request-ID y log de peticiones). Las rutas se registran después con Router.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 30, // /api/stats recorre la tabla varias veces
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
		Immutable:             true, // los parámetros sobreviven al ciclo de la petición
		UnescapePath:          true, // /api/winner_details/P%2042 -> "P 42"
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(log))

	return app
}

// errorHandler responde {"error": "..."}. Los *fiber.Error conservan su código (404 de rutas
// inexistentes, por ejemplo); el resto, incluidos los pánicos recuperados, es 500.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("error no controlado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
