// migrate aplica el esquema de referencia (tablas winners y retailer_sales) sobre la base
// configurada. En producción las tablas las carga un proceso externo; este comando es para
// entornos locales y de pruebas.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down [pasos]   (por defecto 1)
//	go run ./cmd/migrate status
//
// down borra tablas y datos. Con APP_ENV=production se rechaza.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/texas-lotto-api/internal/infrastructure/postgres"
	"github.com/jhoicas/texas-lotto-api/pkg/config"
	"github.com/jhoicas/texas-lotto-api/pkg/logger"
)

// errDownEnProduccion las tablas de producción pertenecen al proceso de carga externo.
var errDownEnProduccion = errors.New("migrate down no está permitido con APP_ENV=production")

// checkDown valida que el entorno admite revertir migraciones.
func checkDown(env string) error {
	if strings.EqualFold(strings.TrimSpace(env), "production") {
		return errDownEnProduccion
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate up | down [pasos] | status  (down se rechaza con APP_ENV=production)")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	dsn := cfg.DB.ConnectionString()

	switch os.Args[1] {
	case "up":
		if err := postgres.MigrateUp(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate up")
		}
		log.Info().Msg("migraciones aplicadas")

	case "down":
		if err := checkDown(cfg.App.Env); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		steps := 1
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil || steps < 1 {
				fmt.Fprintf(os.Stderr, "pasos inválidos: %q\n", os.Args[2])
				os.Exit(2)
			}
		}
		if err := postgres.MigrateDown(dsn, steps); err != nil {
			log.Fatal().Err(err).Msg("migrate down")
		}
		log.Info().Int("steps", steps).Msg("migraciones revertidas")

	case "status":
		version, dirty, err := postgres.MigrationVersion(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("migrate status")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("estado del esquema")

	default:
		fmt.Fprintf(os.Stderr, "subcomando desconocido: %q\n", os.Args[1])
		os.Exit(2)
	}
}
