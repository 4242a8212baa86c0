package internal

import (
	"fmt"

	"stocksuggest/internal/domain"
)

// The index strategy always resolves to this basket, and these funds
// are excluded from every screening pool - an index ETF should never
// also satisfy a stock screen.
var indexBasket = []string{"VOO", "QQQ", "VTI", "BND", "IVV", "SPY"}

// Hand-curated baskets used when resolution runs in static mode,
// roughly five representative names per theme.
var staticBaskets = map[domain.Strategy][]string{
	domain.Strategy_Ethical: {"AAPL", "MSFT", "GOOGL", "V", "PG"},
	domain.Strategy_Growth:  {"NVDA", "TSLA", "AMD", "SHOP", "SNOW"},
	domain.Strategy_Quality: {"MSFT", "AAPL", "V", "MA", "JNJ"},
	domain.Strategy_Value:   {"JPM", "BAC", "MRK", "ABBV", "KO"},
}

type ResolveTickersInput struct {
	Strategies []domain.Strategy
	Mode       domain.ResolutionMode
	// candidate pool for screening strategies, in screening order;
	// passed in explicitly so resolution is a pure function of its inputs
	Universe []domain.Instrument
}

// ResolveTickers turns 1-2 strategies into an ordered, deduplicated
// ticker list of at most MaxPortfolioSize symbols. Results are
// concatenated in strategy order before deduplication, so the first
// strategy's picks keep their position.
func ResolveTickers(in ResolveTickersInput) ([]string, error) {
	if len(in.Strategies) == 0 {
		return nil, fmt.Errorf("cannot resolve tickers without a strategy: %w", domain.ErrEmptyTickerList)
	}

	selected := []string{}
	for _, strategy := range in.Strategies {
		switch {
		case strategy == domain.Strategy_Index:
			// index always resolves statically, even in screening mode
			selected = append(selected, indexBasket...)
		case in.Mode == domain.ResolutionMode_Static:
			basket, ok := staticBaskets[strategy]
			if !ok {
				return nil, fmt.Errorf("no static basket for '%s': %w", strategy, domain.ErrInvalidStrategy)
			}
			selected = append(selected, basket...)
		case in.Mode == domain.ResolutionMode_Screening:
			if _, ok := screenExpressions[strategy]; !ok {
				return nil, fmt.Errorf("no screen for '%s': %w", strategy, domain.ErrInvalidStrategy)
			}
			selected = append(selected, screenUniverse(strategy, in.Universe)...)
		default:
			return nil, fmt.Errorf("unknown resolution mode '%s'", in.Mode)
		}
	}

	// nothing passed any screen - substitute the fallback ticker
	// rather than suggesting an empty portfolio
	if len(selected) == 0 {
		selected = []string{FallbackTicker}
	}

	return truncate(dedupe(selected), MaxPortfolioSize), nil
}

func screenUniverse(strategy domain.Strategy, universe []domain.Instrument) []string {
	indexFunds := map[string]bool{}
	for _, symbol := range indexBasket {
		indexFunds[symbol] = true
	}

	matches := []string{}
	for _, instrument := range universe {
		if indexFunds[instrument.Symbol] {
			continue
		}
		if passesScreen(strategy, instrument) {
			matches = append(matches, instrument.Symbol)
		}
	}
	return matches
}

func dedupe(symbols []string) []string {
	seen := map[string]bool{}
	unique := []string{}
	for _, symbol := range symbols {
		if !seen[symbol] {
			seen[symbol] = true
			unique = append(unique, symbol)
		}
	}
	return unique
}

func truncate(symbols []string, max int) []string {
	if len(symbols) > max {
		return symbols[:max]
	}
	return symbols
}
