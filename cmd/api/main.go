package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/texas-lotto-api/internal/application/report"
	"github.com/jhoicas/texas-lotto-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/texas-lotto-api/internal/interfaces/http"
	"github.com/jhoicas/texas-lotto-api/pkg/config"
	"github.com/jhoicas/texas-lotto-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_host", cfg.DB.Host).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	winnersUC := report.NewWinnersUseCase(postgres.NewWinnerRepository(pool))
	salesUC := report.NewSalesUseCase(postgres.NewSalesRepository(pool))

	app := httpRouter.NewApp(cfg.App.Name, log.Zerolog())
	httpRouter.Router(app, httpRouter.RouterDeps{
		Logger:      log.Zerolog(),
		WinnersUC:   winnersUC,
		SalesUC:     salesUC,
		ServiceName: cfg.App.Name,
		StaticDir:   cfg.App.StaticDir,
		SwaggerFile: cfg.App.SwaggerFile,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
