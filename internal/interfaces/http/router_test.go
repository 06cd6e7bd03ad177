package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
	"github.com/jhoicas/texas-lotto-api/internal/application/report"
	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
	"github.com/jhoicas/texas-lotto-api/internal/domain/repository"
	apphttp "github.com/jhoicas/texas-lotto-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubWinners implementa repository.WinnerRepository con respuestas fijas.
type stubWinners struct {
	err       error
	gotFilter repository.WinnerFilter
	gotPlayer string
}

func (s *stubWinners) Count(_ context.Context, f repository.WinnerFilter) (int64, error) {
	s.gotFilter = f
	return 1, s.err
}

func (s *stubWinners) List(_ context.Context, f repository.WinnerFilter) ([]repository.WinnerListItem, error) {
	return []repository.WinnerListItem{{Winner: winner("SMITH, JOHN", "1500.5"), WinCount: 2}}, s.err
}

func (s *stubWinners) Top(context.Context, int) ([]entity.Winner, error) {
	return []entity.Winner{winner("A", "3000000"), winner("B", "20")}, s.err
}

func (s *stubWinners) ByPlayer(_ context.Context, id string) ([]entity.Winner, error) {
	s.gotPlayer = id
	return []entity.Winner{winner("SMITH, JOHN", "10.25"), winner("SMITH, JOHN", "0.50")}, s.err
}

func (s *stubWinners) Totals(context.Context) (repository.WinnerTotals, error) {
	return repository.WinnerTotals{TotalWinners: 2}, s.err
}

func (s *stubWinners) Categories(context.Context) ([]repository.CategoryTotal, error) {
	return []repository.CategoryTotal{{Category: "Scratch", Count: 2, Total: decimal.NewFromInt(20)}}, s.err
}

func (s *stubWinners) TopCities(context.Context, int) ([]repository.CityTotal, error) {
	return nil, s.err
}

func (s *stubWinners) RepeatWinners(context.Context, int) ([]repository.RepeatWinner, error) {
	return nil, s.err
}

func (s *stubWinners) MonthlyActivity(context.Context, int) ([]repository.MonthTotal, error) {
	return nil, s.err
}

func (s *stubWinners) CountAtLeast(context.Context, decimal.Decimal) (int64, error) {
	return 0, s.err
}

func (s *stubWinners) Anonymous(context.Context) (repository.AnonymousTotals, error) {
	return repository.AnonymousTotals{}, s.err
}

// stubSales implementa repository.SalesRepository.
type stubSales struct {
	err       error
	gotFilter repository.SalesFilter
}

func (s *stubSales) Count(_ context.Context, f repository.SalesFilter) (int64, error) {
	s.gotFilter = f
	return 0, s.err
}

func (s *stubSales) List(context.Context, repository.SalesFilter) ([]entity.RetailerSales, error) {
	return nil, s.err
}

func (s *stubSales) FiscalYears(context.Context) ([]repository.FiscalYearTotal, error) {
	return []repository.FiscalYearTotal{{FiscalYear: "2024", TotalSales: decimal.NewFromInt(4000), TransactionCount: 2, RetailerCount: 1}}, s.err
}

func (s *stubSales) Totals(context.Context) (repository.SalesTotals, error) {
	return repository.SalesTotals{TotalSales: decimal.NewNullDecimal(decimal.NewFromInt(4000)), TotalRetailers: 1, TotalCities: 1}, s.err
}

func winner(name, amount string) entity.Winner {
	d := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	return entity.Winner{
		PlayerName:    &name,
		WonAmount:     decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		ClaimPaidDate: &d,
	}
}

// buildTestApp construye la aplicación completa con repositorios falsos.
func buildTestApp(t *testing.T, w *stubWinners, s *stubSales, staticDir string) *fiber.App {
	t.Helper()
	return buildTestAppWithLog(t, w, s, staticDir, io.Discard)
}

// buildTestAppWithLog igual que buildTestApp pero escribe los logs en out.
func buildTestAppWithLog(t *testing.T, w *stubWinners, s *stubSales, staticDir string, out io.Writer) *fiber.App {
	t.Helper()
	log := zerolog.New(out)
	app := apphttp.NewApp("texas-lotto-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		Logger:      log,
		WinnersUC:   report.NewWinnersUseCase(w),
		SalesUC:     report.NewSalesUseCase(s),
		ServiceName: "texas-lotto-test",
		StaticDir:   staticDir,
	})
	return app
}

// get lanza una petición GET y decodifica el cuerpo JSON en out (si no es nil).
func get(t *testing.T, app *fiber.App, target string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, "")

	var body dto.HealthResponse
	resp := get(t, app, "/health", &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.HealthResponse{Status: "ok", Service: "texas-lotto-test"}, body)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "cada respuesta lleva X-Request-ID")
}

func TestWinners_ParametrosDeConsulta(t *testing.T) {
	w := &stubWinners{}
	app := buildTestApp(t, w, &stubSales{}, "")

	var body dto.WinnersListResponse
	resp := get(t, app, "/api/winners?name=john+smith&city=Houston&min_amount=1000000&sort_by=amount&sort_order=ASC&limit=5&offset=10", &body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	f := w.gotFilter
	assert.Equal(t, "john smith", f.Name)
	assert.Equal(t, "Houston", f.City)
	require.NotNil(t, f.MinAmount)
	assert.Equal(t, "1000000", f.MinAmount.String())
	assert.Equal(t, "amount", f.SortBy)
	assert.Equal(t, "ASC", f.SortOrder)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, 10, f.Offset)

	assert.Equal(t, int64(1), body.Count)
	assert.Equal(t, 1, body.Showing)
	require.Len(t, body.Winners, 1)
	assert.Equal(t, "$1,500.50", body.Winners[0].Amount)
	assert.Equal(t, 1500.5, body.Winners[0].RawAmount)
	assert.Equal(t, "2024-01-10", body.Winners[0].Date)
	assert.Equal(t, "N/A", body.Winners[0].City)
	assert.Equal(t, int64(2), body.Winners[0].WinCount)
}

func TestWinners_LimitInvalidoDevuelve500(t *testing.T) {
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, "")

	var body dto.ErrorResponse
	resp := get(t, app, "/api/winners?limit=abc", &body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body.Error, "limit")
}

func TestTop10(t *testing.T) {
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, "")

	var body dto.Top10Response
	resp := get(t, app, "/api/top10", &body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body.Winners, 2)
	assert.Equal(t, 1, body.Winners[0].Rank)
	assert.Equal(t, 2, body.Winners[1].Rank)
	assert.Equal(t, "$3,000,000.00", body.Winners[0].Amount)
}

func TestStats(t *testing.T) {
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, "")

	var raw map[string]any
	resp := get(t, app, "/api/stats", &raw)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, key := range []string{
		"total_winners", "total_amount", "average_amount", "max_win", "min_win", "million_club",
		"anonymous_winners", "anonymous_total", "game_categories", "lucky_cities",
		"biggest_repeat_winners", "monthly_activity",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["lucky_cities"], "listas vacías como [] y no null")
	assert.Equal(t, "$0.00", raw["total_amount"])
}

func TestWinnerDetails(t *testing.T) {
	w := &stubWinners{}
	app := buildTestApp(t, w, &stubSales{}, "")

	var body dto.WinnerDetailsResponse
	resp := get(t, app, "/api/winner_details/P%2042", &body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "P 42", w.gotPlayer)
	assert.Equal(t, "P 42", body.PlayerID)
	assert.Equal(t, 2, body.TotalWins)
	assert.Equal(t, "$10.75", body.TotalWinnings)
	assert.InDelta(t, 10.75, body.RawTotalWinnings, 1e-9)
}

func TestSales(t *testing.T) {
	s := &stubSales{}
	app := buildTestApp(t, &stubWinners{}, s, "")

	var body dto.SalesListResponse
	resp := get(t, app, "/api/sales?retailer=kwik&fiscal_year=2024&sort_by=date", &body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "kwik", s.gotFilter.Retailer)
	assert.Equal(t, "2024", s.gotFilter.FiscalYear)
	assert.Equal(t, "date", s.gotFilter.SortBy)
	assert.Equal(t, 100, s.gotFilter.Limit)
	assert.NotNil(t, body.Sales)
	assert.Equal(t, 0, body.Showing)
}

func TestSalesStats(t *testing.T) {
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, "")

	var body dto.SalesStatsResponse
	resp := get(t, app, "/api/sales/stats", &body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "$4,000.00", body.TotalSales)
	assert.Equal(t, dto.FiscalYearStatsDTO{TotalSales: "$4,000.00", TransactionCount: 2, RetailerCount: 1}, body.ByFiscalYear["2024"])
}

func TestErrorDeBaseDeDatos(t *testing.T) {
	boom := errors.New("connection refused")
	app := buildTestApp(t, &stubWinners{err: boom}, &stubSales{err: boom}, "")

	for _, path := range []string{"/api/winners", "/api/top10", "/api/stats", "/api/winner_details/P1", "/api/sales", "/api/sales/stats"} {
		t.Run(path, func(t *testing.T) {
			var body dto.ErrorResponse
			resp := get(t, app, path, &body)
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			assert.Contains(t, body.Error, "connection refused")
		})
	}
}

func TestErrorDeReporte_UsaElLoggerDeLaApp(t *testing.T) {
	var buf bytes.Buffer
	app := buildTestAppWithLog(t, &stubWinners{err: errors.New("connection refused")}, &stubSales{}, "", &buf)

	resp := get(t, app, "/api/top10", nil)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var reportLine map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["endpoint"] == "top10" {
			reportLine = entry
		}
	}
	require.NotNil(t, reportLine, "el error del handler se registra en el logger inyectado")
	assert.Equal(t, "error", reportLine["level"])
	assert.Equal(t, "connection refused", reportLine["error"])
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), reportLine["request_id"])
}

func TestEstaticos(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Texas Lotto</h1>"), 0o644))
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, dir)

	resp := get(t, app, "/", nil)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Texas Lotto")

	// Las rutas de la API no quedan tapadas por los estáticos
	apiResp := get(t, app, "/health", nil)
	assert.Equal(t, fiber.StatusOK, apiResp.StatusCode)
}

func TestRutaInexistente(t *testing.T) {
	app := buildTestApp(t, &stubWinners{}, &stubSales{}, "")

	var body dto.ErrorResponse
	resp := get(t, app, "/api/nada", &body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body.Error)
}
