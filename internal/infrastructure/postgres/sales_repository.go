package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
	"github.com/jhoicas/texas-lotto-api/internal/domain/repository"
	"github.com/jhoicas/texas-lotto-api/internal/infrastructure/postgres/predicate"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// salesSort lista blanca de GET /api/sales?sort_by=. Las columnas son alias del SELECT agregado.
var salesSort = predicate.Sort{
	Columns: map[string]string{
		"sales":    "total_sales",
		"retailer": "location_name",
		"date":     "latest_month",
	},
	Default: "total_sales",
}

// Un minorista se identifica por su número más los datos de ubicación.
const retailerGroupBy = `GROUP BY retailer_number, location_name, location_address, location_city,
	         location_state, location_zip, location_county_desc`

// SalesRepo consultas de solo lectura sobre retailer_sales.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o conexión (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

func salesWhere(args *predicate.Args, f repository.SalesFilter) string {
	return predicate.Where(args,
		predicate.ContainsFold("location_name", f.Retailer),
		predicate.ContainsFold("location_city", f.City),
		predicate.EqualsText("fiscal_year", f.FiscalYear),
	)
}

// Count cuenta las filas mensuales de retailer_sales que cumplen los filtros (no los minoristas).
func (r *SalesRepo) Count(ctx context.Context, f repository.SalesFilter) (int64, error) {
	var args predicate.Args
	query := "SELECT COUNT(*) FROM retailer_sales " + salesWhere(&args, f)

	var n int64
	if err := r.q.QueryRow(ctx, query, args.Values()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("sales.Count: %w", err)
	}
	return n, nil
}

// List devuelve las ventas agregadas por minorista para la página pedida.
func (r *SalesRepo) List(ctx context.Context, f repository.SalesFilter) ([]entity.RetailerSales, error) {
	var args predicate.Args
	where := salesWhere(&args, f)
	page := args.Clone()
	limit, offset := page.Bind(f.Limit), page.Bind(f.Offset)

	query := fmt.Sprintf(`
	SELECT
	    retailer_number::text,
	    location_name,
	    location_address,
	    location_city,
	    location_state,
	    location_zip::text,
	    location_county_desc,
	    COUNT(*)              AS transaction_count,
	    SUM(net_sales_amount) AS total_sales,
	    AVG(net_sales_amount) AS avg_sales,
	    MAX(month_end_date)   AS latest_month
	FROM retailer_sales
	%s
	%s
	%s
	LIMIT %s OFFSET %s`, where, retailerGroupBy, salesSort.OrderBy(f.SortBy, f.SortOrder), limit, offset)

	rows, err := r.q.Query(ctx, query, page.Values()...)
	if err != nil {
		return nil, fmt.Errorf("sales.List: %w", err)
	}
	defer rows.Close()

	results := []entity.RetailerSales{}
	for rows.Next() {
		var s entity.RetailerSales
		if err := rows.Scan(
			&s.RetailerNumber,
			&s.LocationName,
			&s.Address,
			&s.City,
			&s.State,
			&s.Zip,
			&s.County,
			&s.TransactionCount,
			&s.TotalSales,
			&s.AvgSales,
			&s.LatestMonth,
		); err != nil {
			return nil, fmt.Errorf("sales.List scan: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.List rows: %w", err)
	}
	return results, nil
}

// FiscalYears totales por año fiscal, del más reciente al más antiguo.
func (r *SalesRepo) FiscalYears(ctx context.Context) ([]repository.FiscalYearTotal, error) {
	const query = `
	SELECT
	    COALESCE(fiscal_year::text, 'N/A')  AS fiscal_year,
	    COALESCE(SUM(net_sales_amount), 0) AS total_sales,
	    COUNT(*)                           AS transaction_count,
	    COUNT(DISTINCT retailer_number)    AS retailer_count
	FROM retailer_sales
	GROUP BY fiscal_year
	ORDER BY fiscal_year DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales.FiscalYears: %w", err)
	}
	defer rows.Close()

	results := []repository.FiscalYearTotal{}
	for rows.Next() {
		var row repository.FiscalYearTotal
		if err := rows.Scan(&row.FiscalYear, &row.TotalSales, &row.TransactionCount, &row.RetailerCount); err != nil {
			return nil, fmt.Errorf("sales.FiscalYears scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Totals ventas totales y cantidad de minoristas y ciudades distintas.
func (r *SalesRepo) Totals(ctx context.Context) (repository.SalesTotals, error) {
	const query = `
	SELECT
	    SUM(net_sales_amount)          AS total_sales,
	    COUNT(DISTINCT retailer_number) AS total_retailers,
	    COUNT(DISTINCT location_city)   AS total_cities
	FROM retailer_sales`

	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.TotalSales, &t.TotalRetailers, &t.TotalCities); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("sales.Totals: %w", err)
	}
	return t, nil
}
