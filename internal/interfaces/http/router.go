package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
	"github.com/jhoicas/texas-lotto-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WinnersUC   *report.WinnersUseCase
	SalesUC     *report.SalesUseCase
	ServiceName string
	StaticDir   string         // sirve index.html en "/"; vacío desactiva los estáticos
	SwaggerFile string         // se monta /docs solo si el archivo existe
	Logger      zerolog.Logger // el mismo que recibe NewApp
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Texas Lotto API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")

	// Winners
	winners := NewWinnersHandler(deps.WinnersUC, deps.Logger)
	api.Get("/winners", winners.List)
	api.Get("/top10", winners.Top10)
	api.Get("/stats", winners.Stats)
	api.Get("/winner_details/:player_id", winners.Details)

	// Sales
	sales := NewSalesHandler(deps.SalesUC, deps.Logger)
	api.Get("/sales", sales.List)
	api.Get("/sales/stats", sales.Stats)

	// Estáticos al final para no tapar las rutas de la API
	if deps.StaticDir != "" {
		app.Static("/", deps.StaticDir, fiber.Static{Index: "index.html"})
	}
}
