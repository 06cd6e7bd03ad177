package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RetailerSales ventas de raspaditos de un minorista, agregadas sobre todas sus filas
// de retailer_sales (una fila por cierre de mes y año fiscal).
type RetailerSales struct {
	RetailerNumber   *string
	LocationName     *string
	Address          *string
	City             *string
	State            *string
	Zip              *string
	County           *string
	TransactionCount int64
	TotalSales       decimal.NullDecimal
	AvgSales         decimal.NullDecimal
	LatestMonth      *time.Time // último month_end_date reportado
}
