package internal

import (
	"math"

	"stocksuggest/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type CalculateAllocationInput struct {
	Amount  decimal.Decimal
	Tickers []string
	Prices  map[string]float64
	// optional; when present, allocation tilts toward tickers trading
	// above their moving average
	History *domain.PriceHistory
}

// CalculateAllocation converts cash plus live prices into whole-share
// holdings. Tickers with a missing or non-positive quote are skipped
// rather than failing the whole allocation; a ticker whose target
// rounds down to zero shares is omitted entirely. Whatever cash the
// floor-rounding leaves behind comes back as leftover.
func CalculateAllocation(in CalculateAllocationInput) (*domain.Allocation, error) {
	if len(in.Tickers) == 0 {
		return nil, domain.ErrEmptyTickerList
	}

	weights := normalizeWeights(in.Tickers, rawTrendWeights(in))

	allocation := domain.NewAllocation(in.Amount)
	totalUsed := decimal.Zero

	for _, symbol := range in.Tickers {
		price, ok := in.Prices[symbol]
		if !ok || price <= 0 {
			continue
		}

		exactPrice := decimal.NewFromFloat(price)
		target := in.Amount.Mul(decimal.NewFromFloat(weights[symbol]))
		shares := target.Div(exactPrice).Floor().IntPart()
		if shares <= 0 {
			continue
		}

		allocated := exactPrice.Mul(decimal.NewFromInt(shares))
		totalUsed = totalUsed.Add(allocated)

		allocation.Holdings = append(allocation.Holdings, domain.Holding{
			Symbol:       symbol,
			AllocatedUSD: allocated,
			Shares:       shares,
			WeightPct:    math.Round(weights[symbol]*10000) / 100,
		})
	}

	allocation.LeftoverCash = in.Amount.Sub(totalUsed)

	return allocation, nil
}

// rawTrendWeights assigns every ticker a baseline weight of 1, then
// replaces it with (price / SMA)^2 wherever the moving average is
// defined. Squaring amplifies the momentum signal: tickers above their
// average get disproportionately more cash, tickers below get less.
// The exponent is a deliberately aggressive heuristic; tune with care.
func rawTrendWeights(in CalculateAllocationInput) map[string]float64 {
	weights := map[string]float64{}
	for _, symbol := range in.Tickers {
		weights[symbol] = 1.0
	}

	if in.History.Empty() {
		return weights
	}

	for _, symbol := range in.Tickers {
		price, ok := in.Prices[symbol]
		if !ok || price <= 0 {
			continue
		}

		closes := in.History.RecentCloses(symbol, SMAWindow)
		if len(closes) < SMAMinPeriods {
			// not enough observations - keep the equal-weight baseline
			continue
		}

		average, err := stats.Mean(closes)
		if err != nil || average <= 0 {
			continue
		}

		score := price / average
		weights[symbol] = score * score
	}

	return weights
}

func normalizeWeights(tickers []string, raw map[string]float64) map[string]float64 {
	total := 0.0
	for _, weight := range raw {
		total += weight
	}

	normalized := map[string]float64{}
	if total == 0 {
		for _, symbol := range tickers {
			normalized[symbol] = 1.0 / float64(len(tickers))
		}
		return normalized
	}

	for symbol, weight := range raw {
		normalized[symbol] = weight / total
	}
	return normalized
}
