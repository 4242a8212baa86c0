package internal

import (
	"stocksuggest/internal/domain"

	"github.com/shopspring/decimal"
)

// CalculateCurrentValue sums shares * live price across holdings.
// Best-effort, matching the allocator's policy: a holding with no
// quote contributes zero instead of failing the computation.
func CalculateCurrentValue(allocation *domain.Allocation, prices map[string]float64) decimal.Decimal {
	total := decimal.Zero
	if allocation == nil {
		return total
	}

	for _, holding := range allocation.Holdings {
		price, ok := prices[holding.Symbol]
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(holding.Shares)))
	}

	return total
}
