package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
	"github.com/jhoicas/texas-lotto-api/internal/domain/repository"
	"github.com/jhoicas/texas-lotto-api/internal/infrastructure/postgres/predicate"
)

var _ repository.WinnerRepository = (*WinnerRepo)(nil)

// winnerSort lista blanca de GET /api/winners?sort_by=.
var winnerSort = predicate.Sort{
	Columns: map[string]string{
		"date":   "claim_paid_date",
		"amount": "won_amount",
		"name":   "player_name_w_id",
	},
	Default: "claim_paid_date",
}

// WinnerRepo consultas de solo lectura sobre winners.
type WinnerRepo struct {
	q Querier
}

// NewWinnerRepository construye el adaptador. Pasar pool o conexión (Querier).
func NewWinnerRepository(q Querier) *WinnerRepo {
	return &WinnerRepo{q: q}
}

func winnerWhere(args *predicate.Args, f repository.WinnerFilter) string {
	preds := []predicate.Predicate{
		predicate.AllWordsContainFold("player_name_w_id", f.Name),
		predicate.ContainsFold("claimant_city", f.City),
	}
	if f.MinAmount != nil {
		preds = append(preds, predicate.AtLeast("won_amount", *f.MinAmount))
	}
	return predicate.Where(args, preds...)
}

// Count cuenta las filas que cumplen los filtros del listado.
func (r *WinnerRepo) Count(ctx context.Context, f repository.WinnerFilter) (int64, error) {
	var args predicate.Args
	query := "SELECT COUNT(*) FROM winners w " + winnerWhere(&args, f)

	var n int64
	if err := r.q.QueryRow(ctx, query, args.Values()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("winners.Count: %w", err)
	}
	return n, nil
}

// List devuelve la página de ganadores con el número de premios de cada jugador.
func (r *WinnerRepo) List(ctx context.Context, f repository.WinnerFilter) ([]repository.WinnerListItem, error) {
	var args predicate.Args
	where := winnerWhere(&args, f)
	page := args.Clone()
	limit, offset := page.Bind(f.Limit), page.Bind(f.Offset)

	query := fmt.Sprintf(`
	SELECT
	    w.player_name_w_id,
	    w.player_id,
	    w.won_amount,
	    w.claim_paid_date,
	    w.claimant_city,
	    w.claimant_state,
	    w.claimant_county,
	    w.game_category,
	    w.location_name,
	    w.location_city,
	    w.instant_price_point::text,
	    w.anonymity_indicator,
	    (SELECT COUNT(*) FROM winners c WHERE c.player_id = w.player_id) AS win_count
	FROM winners w
	%s
	%s
	LIMIT %s OFFSET %s`, where, winnerSort.OrderBy(f.SortBy, f.SortOrder), limit, offset)

	rows, err := r.q.Query(ctx, query, page.Values()...)
	if err != nil {
		return nil, fmt.Errorf("winners.List: %w", err)
	}
	defer rows.Close()

	results := []repository.WinnerListItem{}
	for rows.Next() {
		var item repository.WinnerListItem
		w := &item.Winner
		if err := rows.Scan(
			&w.PlayerName,
			&w.PlayerID,
			&w.WonAmount,
			&w.ClaimPaidDate,
			&w.ClaimantCity,
			&w.ClaimantState,
			&w.ClaimantCounty,
			&w.GameCategory,
			&w.LocationName,
			&w.LocationCity,
			&w.InstantPricePoint,
			&w.AnonymityIndicator,
			&item.WinCount,
		); err != nil {
			return nil, fmt.Errorf("winners.List scan: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("winners.List rows: %w", err)
	}
	return results, nil
}

// Columnas compartidas por el top y el detalle de jugador.
const winnerSummaryColumns = `
	    player_name_w_id,
	    won_amount,
	    claim_paid_date,
	    claimant_city,
	    claimant_state,
	    game_category,
	    location_name`

func scanWinnerSummaries(rows pgx.Rows) ([]entity.Winner, error) {
	defer rows.Close()
	results := []entity.Winner{}
	for rows.Next() {
		var w entity.Winner
		if err := rows.Scan(
			&w.PlayerName,
			&w.WonAmount,
			&w.ClaimPaidDate,
			&w.ClaimantCity,
			&w.ClaimantState,
			&w.GameCategory,
			&w.LocationName,
		); err != nil {
			return nil, err
		}
		results = append(results, w)
	}
	return results, rows.Err()
}

// Top devuelve los premios más altos. Los importes NULL van al final.
func (r *WinnerRepo) Top(ctx context.Context, limit int) ([]entity.Winner, error) {
	query := `
	SELECT` + winnerSummaryColumns + `
	FROM winners
	ORDER BY won_amount DESC NULLS LAST
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("winners.Top: %w", err)
	}
	results, err := scanWinnerSummaries(rows)
	if err != nil {
		return nil, fmt.Errorf("winners.Top scan: %w", err)
	}
	return results, nil
}

// ByPlayer devuelve todos los premios de playerID, del más reciente al más antiguo.
func (r *WinnerRepo) ByPlayer(ctx context.Context, playerID string) ([]entity.Winner, error) {
	query := `
	SELECT` + winnerSummaryColumns + `
	FROM winners
	WHERE player_id = $1
	ORDER BY claim_paid_date DESC`

	rows, err := r.q.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("winners.ByPlayer: %w", err)
	}
	results, err := scanWinnerSummaries(rows)
	if err != nil {
		return nil, fmt.Errorf("winners.ByPlayer scan: %w", err)
	}
	return results, nil
}

// Totals conteo, suma, promedio, máximo y mínimo de todos los premios.
func (r *WinnerRepo) Totals(ctx context.Context) (repository.WinnerTotals, error) {
	const query = `
	SELECT
	    COUNT(*)        AS total_winners,
	    SUM(won_amount) AS total_amount,
	    AVG(won_amount) AS avg_amount,
	    MAX(won_amount) AS max_win,
	    MIN(won_amount) AS min_win
	FROM winners`

	var t repository.WinnerTotals
	err := r.q.QueryRow(ctx, query).Scan(&t.TotalWinners, &t.TotalAmount, &t.AvgAmount, &t.MaxWin, &t.MinWin)
	if err != nil {
		return repository.WinnerTotals{}, fmt.Errorf("winners.Totals: %w", err)
	}
	return t, nil
}

// Categories agrupa por game_category, de mayor a menor importe total.
func (r *WinnerRepo) Categories(ctx context.Context) ([]repository.CategoryTotal, error) {
	const query = `
	SELECT
	    COALESCE(game_category, 'N/A') AS game_category,
	    COUNT(*)                       AS count,
	    COALESCE(SUM(won_amount), 0)   AS total
	FROM winners
	GROUP BY game_category
	ORDER BY total DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("winners.Categories: %w", err)
	}
	defer rows.Close()

	results := []repository.CategoryTotal{}
	for rows.Next() {
		var row repository.CategoryTotal
		if err := rows.Scan(&row.Category, &row.Count, &row.Total); err != nil {
			return nil, fmt.Errorf("winners.Categories scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopCities ciudades con más ganadores; excluye reclamos sin ciudad.
func (r *WinnerRepo) TopCities(ctx context.Context, limit int) ([]repository.CityTotal, error) {
	const query = `
	SELECT
	    claimant_city,
	    COALESCE(claimant_state, 'N/A') AS claimant_state,
	    COUNT(*)                        AS winner_count,
	    COALESCE(SUM(won_amount), 0)    AS total_winnings
	FROM winners
	WHERE claimant_city IS NOT NULL
	GROUP BY claimant_city, claimant_state
	ORDER BY winner_count DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("winners.TopCities: %w", err)
	}
	defer rows.Close()

	results := []repository.CityTotal{}
	for rows.Next() {
		var row repository.CityTotal
		if err := rows.Scan(&row.City, &row.State, &row.Winners, &row.Total); err != nil {
			return nil, fmt.Errorf("winners.TopCities scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RepeatWinners jugadores con más de un premio, por cantidad de premios y luego por importe.
func (r *WinnerRepo) RepeatWinners(ctx context.Context, limit int) ([]repository.RepeatWinner, error) {
	const query = `
	SELECT
	    player_name_w_id,
	    player_id,
	    COUNT(*)                     AS win_count,
	    COALESCE(SUM(won_amount), 0) AS total_winnings,
	    COALESCE(MAX(won_amount), 0) AS biggest_win
	FROM winners
	GROUP BY player_name_w_id, player_id
	HAVING COUNT(*) > 1
	ORDER BY win_count DESC, total_winnings DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("winners.RepeatWinners: %w", err)
	}
	defer rows.Close()

	results := []repository.RepeatWinner{}
	for rows.Next() {
		var row repository.RepeatWinner
		if err := rows.Scan(&row.PlayerName, &row.PlayerID, &row.WinCount, &row.Total, &row.Biggest); err != nil {
			return nil, fmt.Errorf("winners.RepeatWinners scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MonthlyActivity premios por mes desde hace `months` meses, un máximo de `months` filas.
func (r *WinnerRepo) MonthlyActivity(ctx context.Context, months int) ([]repository.MonthTotal, error) {
	const query = `
	SELECT
	    TO_CHAR(claim_paid_date, 'YYYY-MM') AS month,
	    COUNT(*)                            AS winners,
	    COALESCE(SUM(won_amount), 0)        AS total
	FROM winners
	WHERE claim_paid_date >= CURRENT_DATE - make_interval(months => $1)
	GROUP BY TO_CHAR(claim_paid_date, 'YYYY-MM')
	ORDER BY month DESC
	LIMIT $2`

	// months => espera integer y LIMIT bigint: un mismo $1 en ambos no tipa en PostgreSQL.
	rows, err := r.q.Query(ctx, query, months, months)
	if err != nil {
		return nil, fmt.Errorf("winners.MonthlyActivity: %w", err)
	}
	defer rows.Close()

	results := []repository.MonthTotal{}
	for rows.Next() {
		var row repository.MonthTotal
		if err := rows.Scan(&row.Month, &row.Winners, &row.Total); err != nil {
			return nil, fmt.Errorf("winners.MonthlyActivity scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountAtLeast cuenta los premios con won_amount >= amount.
func (r *WinnerRepo) CountAtLeast(ctx context.Context, amount decimal.Decimal) (int64, error) {
	const query = `SELECT COUNT(*) FROM winners WHERE won_amount >= $1`

	var n int64
	if err := r.q.QueryRow(ctx, query, amount).Scan(&n); err != nil {
		return 0, fmt.Errorf("winners.CountAtLeast: %w", err)
	}
	return n, nil
}

// Anonymous conteo e importe de los premios con anonymity_indicator = 'Yes'.
func (r *WinnerRepo) Anonymous(ctx context.Context) (repository.AnonymousTotals, error) {
	const query = `
	SELECT
	    COUNT(*)        AS anon_count,
	    SUM(won_amount) AS anon_total
	FROM winners
	WHERE anonymity_indicator = 'Yes'`

	var t repository.AnonymousTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.Count, &t.Total); err != nil {
		return repository.AnonymousTotals{}, fmt.Errorf("winners.Anonymous: %w", err)
	}
	return t, nil
}
