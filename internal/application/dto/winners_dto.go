package dto

// ── Query parameters ──────────────────────────────────────────────────────────

// WinnersQuery parámetros de GET /api/winners. Se reciben como texto y el caso de uso los valida.
type WinnersQuery struct {
	Limit     string `query:"limit"`      // default 100
	Offset    string `query:"offset"`     // default 0
	Name      string `query:"name"`       // una o varias palabras
	City      string `query:"city"`
	MinAmount string `query:"min_amount"` // importe mínimo
	SortBy    string `query:"sort_by"`    // date|amount|name (default date)
	SortOrder string `query:"sort_order"` // asc|desc (default desc)
}

// ── Listado ───────────────────────────────────────────────────────────────────

// WinnerDTO fila de GET /api/winners.
type WinnerDTO struct {
	Name              string  `json:"name"`
	PlayerID          string  `json:"player_id"`
	Amount            string  `json:"amount"`     // "$1,234.56"
	RawAmount         float64 `json:"raw_amount"` // mismo importe, numérico
	Date              string  `json:"date"`       // YYYY-MM-DD o "N/A"
	City              string  `json:"city"`
	State             string  `json:"state"`
	County            string  `json:"county"`
	GameCategory      string  `json:"game_category"`
	Location          string  `json:"location"`
	LocationCity      string  `json:"location_city"`
	InstantPricePoint string  `json:"instant_price_point"`
	Anonymity         string  `json:"anonymity"`
	WinCount          int64   `json:"win_count"` // premios totales del mismo jugador
}

// WinnersListResponse respuesta de GET /api/winners.
type WinnersListResponse struct {
	Winners []WinnerDTO `json:"winners"`
	Count   int64       `json:"count"`   // total que cumple los filtros
	Showing int         `json:"showing"` // filas en esta página
}

// ── Top 10 ────────────────────────────────────────────────────────────────────

// RankedWinnerDTO fila de GET /api/top10.
type RankedWinnerDTO struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Amount       string  `json:"amount"`
	RawAmount    float64 `json:"raw_amount"`
	Date         string  `json:"date"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	GameCategory string  `json:"game_category"`
	Location     string  `json:"location"`
}

// Top10Response respuesta de GET /api/top10.
type Top10Response struct {
	Winners []RankedWinnerDTO `json:"winners"`
}

// ── Estadísticas ──────────────────────────────────────────────────────────────

// CategoryStatsDTO premios de una categoría de juego.
type CategoryStatsDTO struct {
	Count int64  `json:"count"`
	Total string `json:"total"`
}

// LuckyCityDTO ciudad con muchos ganadores.
type LuckyCityDTO struct {
	City    string `json:"city"` // "HOUSTON, TX"
	Winners int64  `json:"winners"`
	Total   string `json:"total"`
}

// RepeatWinnerDTO jugador con más de un premio.
type RepeatWinnerDTO struct {
	Name     string `json:"name"`
	TimesWon int64  `json:"times_won"`
	Total    string `json:"total"`
	Biggest  string `json:"biggest"`
}

// MonthlyActivityDTO premios de un mes.
type MonthlyActivityDTO struct {
	Month   string `json:"month"` // YYYY-MM
	Winners int64  `json:"winners"`
	Total   string `json:"total"`
}

// WinnerStatsResponse respuesta de GET /api/stats.
type WinnerStatsResponse struct {
	TotalWinners         int64                       `json:"total_winners"`
	TotalAmount          string                      `json:"total_amount"`
	AverageAmount        string                      `json:"average_amount"`
	MaxWin               string                      `json:"max_win"`
	MinWin               string                      `json:"min_win"`
	MillionClub          int64                       `json:"million_club"`
	AnonymousWinners     int64                       `json:"anonymous_winners"`
	AnonymousTotal       string                      `json:"anonymous_total"`
	GameCategories       map[string]CategoryStatsDTO `json:"game_categories"`
	LuckyCities          []LuckyCityDTO              `json:"lucky_cities"`
	BiggestRepeatWinners []RepeatWinnerDTO           `json:"biggest_repeat_winners"`
	MonthlyActivity      []MonthlyActivityDTO        `json:"monthly_activity"`
}

// ── Detalle de jugador ────────────────────────────────────────────────────────

// WinDTO un premio dentro de GET /api/winner_details/:player_id.
type WinDTO struct {
	Name         string  `json:"name"`
	Amount       string  `json:"amount"`
	RawAmount    float64 `json:"raw_amount"`
	Date         string  `json:"date"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	GameCategory string  `json:"game_category"`
	Location     string  `json:"location"`
}

// WinnerDetailsResponse respuesta de GET /api/winner_details/:player_id.
type WinnerDetailsResponse struct {
	PlayerID         string   `json:"player_id"`
	Wins             []WinDTO `json:"wins"`
	TotalWins        int      `json:"total_wins"`
	TotalWinnings    string   `json:"total_winnings"`
	RawTotalWinnings float64  `json:"raw_total_winnings"` // suma de raw_amount de Wins
}
