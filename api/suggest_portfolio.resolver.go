package api

import (
	"context"
	"errors"
	"fmt"

	"stocksuggest/internal/app"
	"stocksuggest/internal/domain"

	"github.com/gin-gonic/gin"
)

type SuggestPortfolioRequest struct {
	InvestmentAmount float64  `json:"investmentAmount"`
	Strategies       []string `json:"strategies"`
	// optional; defaults to screening
	ResolutionMode *string `json:"resolutionMode,omitempty"`
}

type suggestedHolding struct {
	Ticker          string  `json:"ticker"`
	AllocatedUsd    float64 `json:"allocatedUsd"`
	SharesPurchased int64   `json:"sharesPurchased"`
	WeightPct       float64 `json:"weightPct"`
}

type SuggestPortfolioResponse struct {
	SuggestedHoldings    []suggestedHolding  `json:"suggestedHoldings"`
	CurrentTotalValueUsd float64             `json:"currentTotalValueUsd"`
	WeeklyValueTrend     []domain.TrendPoint `json:"weeklyValueTrend"`
	LeftoverCashUsd      float64             `json:"leftoverCashUsd"`
}

func (m ApiHandler) suggestPortfolio(c *gin.Context) {
	var requestBody SuggestPortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if len(requestBody.Strategies) < 1 || len(requestBody.Strategies) > 2 {
		returnErrorJsonCode(fmt.Errorf("expected 1-2 strategies, got %d", len(requestBody.Strategies)), c, 400)
		return
	}

	strategies := []domain.Strategy{}
	for _, name := range requestBody.Strategies {
		strategy, err := domain.NewStrategy(name)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		strategies = append(strategies, *strategy)
	}

	mode := domain.ResolutionMode_Screening
	if requestBody.ResolutionMode != nil {
		parsedMode, err := domain.NewResolutionMode(*requestBody.ResolutionMode)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		mode = *parsedMode
	}

	result, err := m.SuggestionHandler.SuggestPortfolio(context.Background(), app.SuggestPortfolioInput{
		Amount:     requestBody.InvestmentAmount,
		Strategies: strategies,
		Mode:       mode,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidStrategy),
		errors.Is(err, domain.ErrEmptyTickerList):
		returnErrorJsonCode(err, c, 400)
		return
	case errors.Is(err, app.ErrDataUnavailable):
		returnErrorJsonCode(err, c, 503)
		return
	case err != nil:
		returnErrorJson(fmt.Errorf("failed to suggest portfolio: %w", err), c)
		return
	}

	holdings := []suggestedHolding{}
	for _, holding := range result.Allocation.Holdings {
		holdings = append(holdings, suggestedHolding{
			Ticker:          holding.Symbol,
			AllocatedUsd:    holding.AllocatedUSD.Round(2).InexactFloat64(),
			SharesPurchased: holding.Shares,
			WeightPct:       holding.WeightPct,
		})
	}

	c.JSON(200, SuggestPortfolioResponse{
		SuggestedHoldings:    holdings,
		CurrentTotalValueUsd: result.CurrentTotalValue.Round(2).InexactFloat64(),
		WeeklyValueTrend:     result.WeeklyTrend,
		LeftoverCashUsd:      result.Allocation.LeftoverCash.Round(2).InexactFloat64(),
	})
}
