package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
)

// WinnerFilter filtros, orden y paginación de GET /api/winners.
// Los strings vacíos equivalen a "sin filtro".
type WinnerFilter struct {
	Name      string           // una o varias palabras; todas deben aparecer en el nombre
	City      string           // subcadena de claimant_city
	MinAmount *decimal.Decimal // won_amount >= MinAmount
	SortBy    string           // date | amount | name
	SortOrder string           // asc | desc
	Limit     int
	Offset    int
}

// WinnerListItem fila del listado con el total de premios del mismo jugador.
type WinnerListItem struct {
	entity.Winner
	WinCount int64
}

// WinnerTotals agregados globales de la tabla winners.
type WinnerTotals struct {
	TotalWinners int64
	TotalAmount  decimal.NullDecimal
	AvgAmount    decimal.NullDecimal
	MaxWin       decimal.NullDecimal
	MinWin       decimal.NullDecimal
}

// CategoryTotal premios agrupados por game_category.
type CategoryTotal struct {
	Category string
	Count    int64
	Total    decimal.Decimal
}

// CityTotal ganadores agrupados por ciudad y estado del reclamante.
type CityTotal struct {
	City    string
	State   string
	Winners int64
	Total   decimal.Decimal
}

// RepeatWinner jugador con más de un premio.
type RepeatWinner struct {
	PlayerName *string
	PlayerID   *string
	WinCount   int64
	Total      decimal.Decimal
	Biggest    decimal.Decimal
}

// MonthTotal actividad de un mes (YYYY-MM).
type MonthTotal struct {
	Month   string
	Winners int64
	Total   decimal.Decimal
}

// AnonymousTotals premios cobrados con identidad protegida.
type AnonymousTotals struct {
	Count int64
	Total decimal.NullDecimal
}

// WinnerRepository consultas de solo lectura sobre la tabla winners.
type WinnerRepository interface {
	// Count devuelve cuántas filas cumplen los filtros (ignora orden y paginación).
	Count(ctx context.Context, f WinnerFilter) (int64, error)
	// List devuelve la página pedida, ordenada por la columna de la lista blanca.
	List(ctx context.Context, f WinnerFilter) ([]WinnerListItem, error)
	// Top devuelve los `limit` premios de mayor importe.
	Top(ctx context.Context, limit int) ([]entity.Winner, error)
	// ByPlayer devuelve todos los premios de un jugador, del más reciente al más antiguo.
	ByPlayer(ctx context.Context, playerID string) ([]entity.Winner, error)

	// ── Estadísticas ──────────────────────────────────────────────────────────

	Totals(ctx context.Context) (WinnerTotals, error)
	Categories(ctx context.Context) ([]CategoryTotal, error)
	TopCities(ctx context.Context, limit int) ([]CityTotal, error)
	RepeatWinners(ctx context.Context, limit int) ([]RepeatWinner, error)
	// MonthlyActivity agrupa por mes los premios de los últimos `months` meses, más reciente primero.
	MonthlyActivity(ctx context.Context, months int) ([]MonthTotal, error)
	CountAtLeast(ctx context.Context, amount decimal.Decimal) (int64, error)
	Anonymous(ctx context.Context) (AnonymousTotals, error)
}
