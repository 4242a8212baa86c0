package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stocksuggest/internal"
	"stocksuggest/internal/domain"
	"stocksuggest/internal/logger"
	"stocksuggest/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrDataUnavailable marks upstream market-data failures so the
// transport layer can report them as a 503 instead of a generic 500.
var ErrDataUnavailable = errors.New("market data unavailable")

// PriceProvider is the market-data collaborator. Both methods return
// already-materialized snapshots; either may be partial.
type PriceProvider interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error)
	GetDailyHistory(ctx context.Context, symbols []string, days int) (*domain.PriceHistory, error)
}

type SuggestionHandler struct {
	UniverseRepository repository.UniverseRepository
	PriceProvider      PriceProvider
}

type SuggestPortfolioInput struct {
	Amount     float64
	Strategies []domain.Strategy
	// zero value defaults to screening
	Mode domain.ResolutionMode
}

type SuggestPortfolioResult struct {
	Allocation        *domain.Allocation
	CurrentTotalValue decimal.Decimal
	WeeklyTrend       []domain.TrendPoint
}

// SuggestPortfolio runs the whole pipeline: resolve strategies to
// tickers, snapshot market data, allocate, then value the result and
// reconstruct its recent trend. Each request is computed from scratch;
// nothing is persisted.
func (h SuggestionHandler) SuggestPortfolio(ctx context.Context, in SuggestPortfolioInput) (*SuggestPortfolioResult, error) {
	if in.Amount < internal.MinInvestmentUSD {
		return nil, fmt.Errorf("investment amount must be at least $%d, got %.2f: %w", internal.MinInvestmentUSD, in.Amount, domain.ErrInvalidAmount)
	}
	if len(in.Strategies) < 1 || len(in.Strategies) > 2 {
		return nil, fmt.Errorf("expected 1-2 strategies, got %d: %w", len(in.Strategies), domain.ErrInvalidStrategy)
	}

	mode := in.Mode
	if mode == "" {
		mode = domain.ResolutionMode_Screening
	}

	// the universe snapshot is only needed when something will
	// actually be screened
	universe := []domain.Instrument{}
	if mode == domain.ResolutionMode_Screening && needsScreening(in.Strategies) {
		var err error
		universe, err = h.UniverseRepository.List()
		if err != nil {
			return nil, fmt.Errorf("failed to load candidate universe: %w", err)
		}
	}

	tickers, err := internal.ResolveTickers(internal.ResolveTickersInput{
		Strategies: in.Strategies,
		Mode:       mode,
		Universe:   universe,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve strategies: %w", err)
	}

	prices, history, err := h.fetchMarketData(ctx, tickers)
	if err != nil {
		return nil, err
	}

	allocation, err := internal.CalculateAllocation(internal.CalculateAllocationInput{
		Amount:  decimal.NewFromFloat(in.Amount),
		Tickers: tickers,
		Prices:  prices,
		History: history,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate allocation: %w", err)
	}

	return &SuggestPortfolioResult{
		Allocation:        allocation,
		CurrentTotalValue: internal.CalculateCurrentValue(allocation, prices),
		WeeklyTrend:       internal.CalculateWeeklyTrend(allocation, history),
	}, nil
}

// fetchMarketData snapshots live prices and recent history in
// parallel. Missing live prices are fatal - there is nothing to
// allocate against - but a failed history fetch only degrades the
// suggestion to equal weighting with an empty trend.
func (h SuggestionHandler) fetchMarketData(ctx context.Context, tickers []string) (map[string]float64, *domain.PriceHistory, error) {
	var (
		prices     map[string]float64
		history    *domain.PriceHistory
		pricesErr  error
		historyErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		prices, pricesErr = h.PriceProvider.GetLatestPrices(ctx, tickers)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = h.PriceProvider.GetDailyHistory(ctx, tickers, internal.HistoryFetchDays)
	}()
	wg.Wait()

	if pricesErr != nil {
		return nil, nil, fmt.Errorf("%w: failed to fetch live prices: %v", ErrDataUnavailable, pricesErr)
	}
	if historyErr != nil {
		logger.Warn(fmt.Sprintf("degrading to equal-weight allocation, history fetch failed: %v", historyErr))
		history = nil
	}

	return prices, history, nil
}

func needsScreening(strategies []domain.Strategy) bool {
	for _, strategy := range strategies {
		if strategy != domain.Strategy_Index {
			return true
		}
	}
	return false
}
