package domain

import (
	"fmt"
	"time"
)

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// HistoryShape identifies how a historical close table is keyed.
// Upstream providers return tables in a few different layouts depending
// on how many symbols were requested; the shape is determined once at
// ingestion so row lookups don't have to re-probe it.
type HistoryShape string

const (
	// one close column per ticker, keyed by ticker
	HistoryShape_FlatByTicker HistoryShape = "FLAT_BY_TICKER"
	// columns keyed by (ticker, field) pairs, close under (ticker, "Close")
	HistoryShape_CompositeKeyed HistoryShape = "COMPOSITE_KEYED"
	// a single unlabeled close series for one instrument
	HistoryShape_SingleSeries HistoryShape = "SINGLE_SERIES"
)

type CompositeKey struct {
	Symbol string
	Field  string
}

const CompositeField_Close = "Close"

// PriceHistory is a chronologically ascending table of daily closes.
// A nil cell means the close is missing for that ticker on that day.
type PriceHistory struct {
	Shape HistoryShape
	Dates []time.Time

	columns      map[string][]*float64
	composite    map[CompositeKey][]*float64
	single       []*float64
	singleSymbol string
}

func NewFlatHistory(dates []time.Time, closes map[string][]*float64) (*PriceHistory, error) {
	for symbol, col := range closes {
		if len(col) != len(dates) {
			return nil, fmt.Errorf("close column for %s has %d rows, expected %d", symbol, len(col), len(dates))
		}
	}
	return &PriceHistory{
		Shape:   HistoryShape_FlatByTicker,
		Dates:   dates,
		columns: closes,
	}, nil
}

func NewCompositeHistory(dates []time.Time, columns map[CompositeKey][]*float64) (*PriceHistory, error) {
	for key, col := range columns {
		if len(col) != len(dates) {
			return nil, fmt.Errorf("column for (%s, %s) has %d rows, expected %d", key.Symbol, key.Field, len(col), len(dates))
		}
	}
	return &PriceHistory{
		Shape:     HistoryShape_CompositeKeyed,
		Dates:     dates,
		composite: columns,
	}, nil
}

// NewSingleSeriesHistory builds a one-instrument table whose only price
// column is an unlabeled close series. symbol may be empty when the
// provider did not say which instrument the series belongs to; lookups
// then match any requested symbol.
func NewSingleSeriesHistory(symbol string, dates []time.Time, closes []*float64) (*PriceHistory, error) {
	if len(closes) != len(dates) {
		return nil, fmt.Errorf("close series has %d rows, expected %d", len(closes), len(dates))
	}
	return &PriceHistory{
		Shape:        HistoryShape_SingleSeries,
		Dates:        dates,
		single:       closes,
		singleSymbol: symbol,
	}, nil
}

func (h *PriceHistory) Empty() bool {
	return h == nil || len(h.Dates) == 0
}

func (h *PriceHistory) NumRows() int {
	if h == nil {
		return 0
	}
	return len(h.Dates)
}

// CloseAt returns the close for symbol on row (0-based, ascending).
// The bool is false when the table has no usable value there.
func (h *PriceHistory) CloseAt(symbol string, row int) (float64, bool) {
	if h == nil || row < 0 || row >= len(h.Dates) {
		return 0, false
	}
	var cell *float64
	switch h.Shape {
	case HistoryShape_FlatByTicker:
		col, ok := h.columns[symbol]
		if !ok {
			return 0, false
		}
		cell = col[row]
	case HistoryShape_CompositeKeyed:
		col, ok := h.composite[CompositeKey{Symbol: symbol, Field: CompositeField_Close}]
		if !ok {
			// fall back to any column keyed under the symbol
			for key, c := range h.composite {
				if key.Symbol == symbol {
					col = c
					ok = true
					break
				}
			}
		}
		if !ok {
			return 0, false
		}
		cell = col[row]
	case HistoryShape_SingleSeries:
		if h.singleSymbol != "" && h.singleSymbol != symbol {
			return 0, false
		}
		cell = h.single[row]
	default:
		return 0, false
	}
	if cell == nil {
		return 0, false
	}
	return *cell, true
}

// RecentCloses returns up to window of the most recent non-missing
// closes for symbol, oldest first.
func (h *PriceHistory) RecentCloses(symbol string, window int) []float64 {
	if h == nil {
		return nil
	}
	closes := []float64{}
	for row := 0; row < len(h.Dates); row++ {
		if price, ok := h.CloseAt(symbol, row); ok {
			closes = append(closes, price)
		}
	}
	if len(closes) > window {
		closes = closes[len(closes)-window:]
	}
	return closes
}
