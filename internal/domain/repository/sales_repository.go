package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
)

// SalesFilter filtros, orden y paginación de GET /api/sales.
type SalesFilter struct {
	Retailer   string // subcadena de location_name
	City       string // subcadena de location_city
	FiscalYear string // igualdad exacta
	SortBy     string // sales | retailer | date
	SortOrder  string // asc | desc
	Limit      int
	Offset     int
}

// FiscalYearTotal ventas agregadas de un año fiscal.
type FiscalYearTotal struct {
	FiscalYear       string
	TotalSales       decimal.Decimal
	TransactionCount int64
	RetailerCount    int64
}

// SalesTotals agregados globales de retailer_sales.
type SalesTotals struct {
	TotalSales     decimal.NullDecimal
	TotalRetailers int64
	TotalCities    int64
}

// SalesRepository consultas de solo lectura sobre la tabla retailer_sales.
type SalesRepository interface {
	// Count devuelve cuántas filas de retailer_sales cumplen los filtros; List en cambio agrupa por minorista.
	Count(ctx context.Context, f SalesFilter) (int64, error)
	// List devuelve las ventas agregadas por minorista para la página pedida.
	List(ctx context.Context, f SalesFilter) ([]entity.RetailerSales, error)
	// FiscalYears devuelve los totales por año fiscal, del más reciente al más antiguo.
	FiscalYears(ctx context.Context) ([]FiscalYearTotal, error)
	Totals(ctx context.Context) (SalesTotals, error)
}
