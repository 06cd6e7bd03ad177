package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/texas-lotto-api/internal/application/dto"
	"github.com/jhoicas/texas-lotto-api/internal/domain/entity"
	"github.com/jhoicas/texas-lotto-api/internal/domain/repository"
	"github.com/jhoicas/texas-lotto-api/pkg/money"
)

const (
	topWinners     = 10
	statsListLimit = 10 // ciudades y ganadores repetidos en /api/stats
	activityMonths = 12
)

var millionClubThreshold = decimal.NewFromInt(1_000_000)

// WinnersUseCase reportes sobre la tabla winners: listado, top 10, estadísticas y detalle por jugador.
// Cada operación es independiente y de solo lectura.
type WinnersUseCase struct {
	repo repository.WinnerRepository
}

// NewWinnersUseCase construye el caso de uso.
func NewWinnersUseCase(repo repository.WinnerRepository) *WinnersUseCase {
	return &WinnersUseCase{repo: repo}
}

// List aplica filtros, orden y paginación. Primero cuenta el total y luego trae la página.
func (uc *WinnersUseCase) List(ctx context.Context, q dto.WinnersQuery) (*dto.WinnersListResponse, error) {
	limit, offset, err := parsePage(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	minAmount, err := parseAmount("min_amount", q.MinAmount)
	if err != nil {
		return nil, err
	}
	filter := repository.WinnerFilter{
		Name:      q.Name,
		City:      q.City,
		MinAmount: minAmount,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     limit,
		Offset:    offset,
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	winners := make([]dto.WinnerDTO, 0, len(items))
	for _, it := range items {
		winners = append(winners, dto.WinnerDTO{
			Name:              orNA(it.PlayerName),
			PlayerID:          orNA(it.PlayerID),
			Amount:            money.FormatNull(it.WonAmount),
			RawAmount:         money.Raw(it.WonAmount),
			Date:              dateOrNA(it.ClaimPaidDate),
			City:              orNA(it.ClaimantCity),
			State:             orNA(it.ClaimantState),
			County:            orNA(it.ClaimantCounty),
			GameCategory:      orNA(it.GameCategory),
			Location:          orNA(it.LocationName),
			LocationCity:      orNA(it.LocationCity),
			InstantPricePoint: orNA(it.InstantPricePoint),
			Anonymity:         orDefault(it.AnonymityIndicator, "No"),
			WinCount:          it.WinCount,
		})
	}

	return &dto.WinnersListResponse{Winners: winners, Count: total, Showing: len(winners)}, nil
}

// Top10 los diez premios más altos con su posición (1 = mayor importe).
func (uc *WinnersUseCase) Top10(ctx context.Context) (*dto.Top10Response, error) {
	rows, err := uc.repo.Top(ctx, topWinners)
	if err != nil {
		return nil, err
	}

	winners := make([]dto.RankedWinnerDTO, 0, len(rows))
	for i, w := range rows {
		winners = append(winners, dto.RankedWinnerDTO{
			Rank:         i + 1,
			Name:         orNA(w.PlayerName),
			Amount:       money.FormatNull(w.WonAmount),
			RawAmount:    money.Raw(w.WonAmount),
			Date:         dateOrNA(w.ClaimPaidDate),
			City:         orNA(w.ClaimantCity),
			State:        orNA(w.ClaimantState),
			GameCategory: orNA(w.GameCategory),
			Location:     orNA(w.LocationName),
		})
	}
	return &dto.Top10Response{Winners: winners}, nil
}

// Stats reúne los agregados de /api/stats. Las consultas se ejecutan en secuencia;
// la primera que falle aborta el reporte completo.
func (uc *WinnersUseCase) Stats(ctx context.Context) (*dto.WinnerStatsResponse, error) {
	totals, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := uc.repo.TopCities(ctx, statsListLimit)
	if err != nil {
		return nil, err
	}
	repeat, err := uc.repo.RepeatWinners(ctx, statsListLimit)
	if err != nil {
		return nil, err
	}
	months, err := uc.repo.MonthlyActivity(ctx, activityMonths)
	if err != nil {
		return nil, err
	}
	millionClub, err := uc.repo.CountAtLeast(ctx, millionClubThreshold)
	if err != nil {
		return nil, err
	}
	anon, err := uc.repo.Anonymous(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.WinnerStatsResponse{
		TotalWinners:         totals.TotalWinners,
		TotalAmount:          money.FormatNull(totals.TotalAmount),
		AverageAmount:        money.FormatNull(totals.AvgAmount),
		MaxWin:               money.FormatNull(totals.MaxWin),
		MinWin:               money.FormatNull(totals.MinWin),
		MillionClub:          millionClub,
		AnonymousWinners:     anon.Count,
		AnonymousTotal:       money.FormatNull(anon.Total),
		GameCategories:       make(map[string]dto.CategoryStatsDTO, len(categories)),
		LuckyCities:          make([]dto.LuckyCityDTO, 0, len(cities)),
		BiggestRepeatWinners: make([]dto.RepeatWinnerDTO, 0, len(repeat)),
		MonthlyActivity:      make([]dto.MonthlyActivityDTO, 0, len(months)),
	}
	for _, c := range categories {
		out.GameCategories[c.Category] = dto.CategoryStatsDTO{Count: c.Count, Total: money.Format(c.Total)}
	}
	for _, c := range cities {
		out.LuckyCities = append(out.LuckyCities, dto.LuckyCityDTO{
			City:    fmt.Sprintf("%s, %s", c.City, c.State),
			Winners: c.Winners,
			Total:   money.Format(c.Total),
		})
	}
	for _, r := range repeat {
		out.BiggestRepeatWinners = append(out.BiggestRepeatWinners, dto.RepeatWinnerDTO{
			Name:     orNA(r.PlayerName),
			TimesWon: r.WinCount,
			Total:    money.Format(r.Total),
			Biggest:  money.Format(r.Biggest),
		})
	}
	for _, m := range months {
		out.MonthlyActivity = append(out.MonthlyActivity, dto.MonthlyActivityDTO{
			Month:   m.Month,
			Winners: m.Winners,
			Total:   money.Format(m.Total),
		})
	}
	return out, nil
}

// Details todos los premios de un jugador. Un jugador sin premios devuelve una lista vacía.
func (uc *WinnersUseCase) Details(ctx context.Context, playerID string) (*dto.WinnerDetailsResponse, error) {
	rows, err := uc.repo.ByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	wins := make([]dto.WinDTO, 0, len(rows))
	total := decimal.Zero
	var rawTotal float64
	for _, w := range rows {
		win := toWinDTO(w)
		wins = append(wins, win)
		rawTotal += win.RawAmount
		if w.WonAmount.Valid {
			total = total.Add(w.WonAmount.Decimal)
		}
	}

	return &dto.WinnerDetailsResponse{
		PlayerID:         playerID,
		Wins:             wins,
		TotalWins:        len(wins),
		TotalWinnings:    money.Format(total),
		RawTotalWinnings: rawTotal,
	}, nil
}

func toWinDTO(w entity.Winner) dto.WinDTO {
	return dto.WinDTO{
		Name:         orNA(w.PlayerName),
		Amount:       money.FormatNull(w.WonAmount),
		RawAmount:    money.Raw(w.WonAmount),
		Date:         dateOrNA(w.ClaimPaidDate),
		City:         orNA(w.ClaimantCity),
		State:        orNA(w.ClaimantState),
		GameCategory: orNA(w.GameCategory),
		Location:     orNA(w.LocationName),
	}
}
