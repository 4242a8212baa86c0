package internal

import (
	"math"
	"time"

	"stocksuggest/internal/domain"
)

// CalculateWeeklyTrend replays a fixed allocation against the trailing
// rows of a close table, producing at most TrendLookbackDays points,
// most recent last. A ticker with no close on a given day contributes
// zero to that day rather than failing the row. An empty allocation or
// empty history yields an empty series - that is a valid result, not
// an error.
func CalculateWeeklyTrend(allocation *domain.Allocation, history *domain.PriceHistory) []domain.TrendPoint {
	trend := []domain.TrendPoint{}
	if allocation == nil || allocation.Empty() || history.Empty() {
		return trend
	}

	numRows := history.NumRows()
	numDays := TrendLookbackDays
	if numRows < numDays {
		numDays = numRows
	}

	for row := numRows - numDays; row < numRows; row++ {
		value := 0.0
		for _, holding := range allocation.Holdings {
			if close, ok := history.CloseAt(holding.Symbol, row); ok {
				value += float64(holding.Shares) * close
			}
		}

		trend = append(trend, domain.TrendPoint{
			Date:  history.Dates[row].Format(time.DateOnly),
			Value: math.Round(value*100) / 100,
		})
	}

	return trend
}
