package yahoo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"stocksuggest/internal/domain"
	"stocksuggest/internal/logger"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// Client fetches live quotes and daily close history from Yahoo
// Finance. It returns already-materialized snapshots; callers must
// tolerate partial data since Yahoo frequently has gaps for individual
// symbols.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// GetLatestPrices returns the current market price per symbol. Symbols
// Yahoo has no usable quote for are left out of the map rather than
// failing the batch.
func (c *Client) GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	prices := map[string]float64{}

	iter := quote.List(symbols)
	for iter.Next() {
		q := iter.Quote()
		if q == nil || q.RegularMarketPrice <= 0 {
			continue
		}
		prices[q.Symbol] = q.RegularMarketPrice
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	return prices, nil
}

// GetDailyHistory fetches the last `days` calendar days of daily
// closes. A single-symbol request yields a single-series table; a
// multi-symbol request yields a flat ticker-keyed table. A symbol with
// no chart data gets a missing column, not an error.
func (c *Client) GetDailyHistory(ctx context.Context, symbols []string, days int) (*domain.PriceHistory, error) {
	start := time.Now().UTC().AddDate(0, 0, -days)
	end := time.Now().UTC()

	closesBySymbol := map[string]map[string]float64{}
	daysSeen := map[string]time.Time{}

	for _, symbol := range symbols {
		params := &chart.Params{
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Symbol:   symbol,
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		closes := map[string]float64{}
		for iter.Next() {
			day := time.Unix(int64(iter.Bar().Timestamp), 0).UTC().Truncate(24 * time.Hour)
			closes[day.Format(time.DateOnly)] = iter.Bar().AdjClose.InexactFloat64()
			daysSeen[day.Format(time.DateOnly)] = day
		}
		if err := iter.Err(); err != nil {
			logger.Warn(fmt.Sprintf("no chart data for %s: %v", symbol, err))
			continue
		}
		closesBySymbol[symbol] = closes
	}

	dates := []time.Time{}
	for _, day := range daysSeen {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	if len(symbols) == 1 {
		symbol := symbols[0]
		series := make([]*float64, len(dates))
		for row, day := range dates {
			if close, ok := closesBySymbol[symbol][day.Format(time.DateOnly)]; ok {
				c := close
				series[row] = &c
			}
		}
		return domain.NewSingleSeriesHistory(symbol, dates, series)
	}

	columns := map[string][]*float64{}
	for symbol, closes := range closesBySymbol {
		column := make([]*float64, len(dates))
		for row, day := range dates {
			if close, ok := closes[day.Format(time.DateOnly)]; ok {
				c := close
				column[row] = &c
			}
		}
		columns[symbol] = column
	}

	return domain.NewFlatHistory(dates, columns)
}
