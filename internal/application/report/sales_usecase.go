package report

import (
	"context"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
	"github.com/jhoicas/texas-lotto-api/internal/domain/repository"
	"github.com/jhoicas/texas-lotto-api/pkg/money"
)

// SalesUseCase reportes de ventas de raspaditos por minorista.
type SalesUseCase struct {
	repo repository.SalesRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.SalesRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// List ventas agregadas por minorista con filtros, orden y paginación.
func (uc *SalesUseCase) List(ctx context.Context, q dto.SalesQuery) (*dto.SalesListResponse, error) {
	limit, offset, err := parsePage(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	filter := repository.SalesFilter{
		Retailer:   q.Retailer,
		City:       q.City,
		FiscalYear: q.FiscalYear,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Limit:      limit,
		Offset:     offset,
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	sales := make([]dto.RetailerSalesDTO, 0, len(rows))
	for _, s := range rows {
		sales = append(sales, dto.RetailerSalesDTO{
			RetailerNumber:   orNA(s.RetailerNumber),
			Location:         orNA(s.LocationName),
			Address:          orNA(s.Address),
			City:             orNA(s.City),
			State:            orNA(s.State),
			Zip:              orNA(s.Zip),
			County:           orNA(s.County),
			TransactionCount: s.TransactionCount,
			TotalSales:       money.FormatNull(s.TotalSales),
			AvgSales:         money.FormatNull(s.AvgSales),
			LatestMonth:      dateOrNA(s.LatestMonth),
		})
	}
	return &dto.SalesListResponse{Sales: sales, Count: total, Showing: len(sales)}, nil
}

// Stats totales por año fiscal más los totales globales.
func (uc *SalesUseCase) Stats(ctx context.Context) (*dto.SalesStatsResponse, error) {
	years, err := uc.repo.FiscalYears(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	byYear := make(map[string]dto.FiscalYearStatsDTO, len(years))
	for _, y := range years {
		byYear[y.FiscalYear] = dto.FiscalYearStatsDTO{
			TotalSales:       money.Format(y.TotalSales),
			TransactionCount: y.TransactionCount,
			RetailerCount:    y.RetailerCount,
		}
	}

	return &dto.SalesStatsResponse{
		TotalSales:     money.FormatNull(totals.TotalSales),
		TotalRetailers: totals.TotalRetailers,
		TotalCities:    totals.TotalCities,
		ByFiscalYear:   byYear,
	}, nil
}
