// Package money formatea importes en dólares para las respuestas JSON.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer admite uso concurrente.
var printer = message.NewPrinter(language.English)

// Format devuelve el importe como "$1,234.56" (separador de miles y dos decimales).
func Format(d decimal.Decimal) string {
	return printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// FormatNull formatea un importe nullable; NULL se presenta como "$0.00".
func FormatNull(d decimal.NullDecimal) string {
	if !d.Valid {
		return Format(decimal.Zero)
	}
	return Format(d.Decimal)
}

// Raw devuelve el valor numérico para consumo por máquinas; NULL equivale a 0.
func Raw(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
