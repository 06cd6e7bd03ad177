package report_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
	"github.com/jhoicas/texas-lotto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios falsos
// ──────────────────────────────────────────────────────────────────────────────

type fakeWinnerRepo struct {
	count     int64
	items     []repository.WinnerListItem
	top       []entity.Winner
	byPlayer  []entity.Winner
	totals    repository.WinnerTotals
	cats      []repository.CategoryTotal
	cities    []repository.CityTotal
	repeat    []repository.RepeatWinner
	months    []repository.MonthTotal
	club      int64
	anonymous repository.AnonymousTotals
	err       error

	// Argumentos recibidos
	gotFilter   repository.WinnerFilter
	gotLimit    int
	gotMonths   int
	gotAtLeast  decimal.Decimal
	gotPlayerID string
	calls       []string
}

func (f *fakeWinnerRepo) Count(_ context.Context, fl repository.WinnerFilter) (int64, error) {
	f.calls = append(f.calls, "Count")
	f.gotFilter = fl
	return f.count, f.err
}

func (f *fakeWinnerRepo) List(_ context.Context, fl repository.WinnerFilter) ([]repository.WinnerListItem, error) {
	f.calls = append(f.calls, "List")
	f.gotFilter = fl
	return f.items, f.err
}

func (f *fakeWinnerRepo) Top(_ context.Context, limit int) ([]entity.Winner, error) {
	f.calls = append(f.calls, "Top")
	f.gotLimit = limit
	return f.top, f.err
}

func (f *fakeWinnerRepo) ByPlayer(_ context.Context, playerID string) ([]entity.Winner, error) {
	f.calls = append(f.calls, "ByPlayer")
	f.gotPlayerID = playerID
	return f.byPlayer, f.err
}

func (f *fakeWinnerRepo) Totals(context.Context) (repository.WinnerTotals, error) {
	f.calls = append(f.calls, "Totals")
	return f.totals, f.err
}

func (f *fakeWinnerRepo) Categories(context.Context) ([]repository.CategoryTotal, error) {
	f.calls = append(f.calls, "Categories")
	return f.cats, f.err
}

func (f *fakeWinnerRepo) TopCities(_ context.Context, limit int) ([]repository.CityTotal, error) {
	f.calls = append(f.calls, "TopCities")
	f.gotLimit = limit
	return f.cities, f.err
}

func (f *fakeWinnerRepo) RepeatWinners(_ context.Context, limit int) ([]repository.RepeatWinner, error) {
	f.calls = append(f.calls, "RepeatWinners")
	f.gotLimit = limit
	return f.repeat, f.err
}

func (f *fakeWinnerRepo) MonthlyActivity(_ context.Context, months int) ([]repository.MonthTotal, error) {
	f.calls = append(f.calls, "MonthlyActivity")
	f.gotMonths = months
	return f.months, f.err
}

func (f *fakeWinnerRepo) CountAtLeast(_ context.Context, amount decimal.Decimal) (int64, error) {
	f.calls = append(f.calls, "CountAtLeast")
	f.gotAtLeast = amount
	return f.club, f.err
}

func (f *fakeWinnerRepo) Anonymous(context.Context) (repository.AnonymousTotals, error) {
	f.calls = append(f.calls, "Anonymous")
	return f.anonymous, f.err
}

type fakeSalesRepo struct {
	count  int64
	sales  []entity.RetailerSales
	years  []repository.FiscalYearTotal
	totals repository.SalesTotals
	err    error

	gotFilter repository.SalesFilter
}

func (f *fakeSalesRepo) Count(_ context.Context, fl repository.SalesFilter) (int64, error) {
	f.gotFilter = fl
	return f.count, f.err
}

func (f *fakeSalesRepo) List(_ context.Context, fl repository.SalesFilter) ([]entity.RetailerSales, error) {
	f.gotFilter = fl
	return f.sales, f.err
}

func (f *fakeSalesRepo) FiscalYears(context.Context) ([]repository.FiscalYearTotal, error) {
	return f.years, f.err
}

func (f *fakeSalesRepo) Totals(context.Context) (repository.SalesTotals, error) {
	return f.totals, f.err
}

// ── Helpers ──

func str(s string) *string { return &s }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
