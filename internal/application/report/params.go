// Package report contiene los casos de uso de los reportes de ganadores y ventas:
// validan los parámetros de consulta, delegan las consultas en los repositorios y
// dan forma a las filas para la respuesta JSON.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/texas-lotto-api/internal/domain"
)

const (
	defaultLimit = 100
	notAvailable = "N/A" // centinela para columnas NULL
)

// parseInt interpreta un parámetro entero opcional; vacío devuelve def.
func parseInt(name, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q no es un entero", domain.ErrInvalidInput, name, raw)
	}
	return n, nil
}

// parsePage devuelve limit y offset con sus valores por defecto (100 y 0).
func parsePage(limitRaw, offsetRaw string) (limit, offset int, err error) {
	if limit, err = parseInt("limit", limitRaw, defaultLimit); err != nil {
		return 0, 0, err
	}
	if offset, err = parseInt("offset", offsetRaw, 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

// parseAmount interpreta un importe opcional; vacío devuelve nil (sin filtro).
func parseAmount(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q no es un número", domain.ErrInvalidInput, name, raw)
	}
	return &d, nil
}

func orNA(s *string) string {
	return orDefault(s, notAvailable)
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func dateOrNA(t *time.Time) string {
	if t == nil {
		return notAvailable
	}
	return t.Format("2006-01-02")
}
