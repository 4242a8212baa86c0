package internal

// Product policy constants. A few of these encode silent behaviors
// (the fallback ticker, the debt/equity default) that change results
// without surfacing an error, so they live here by name instead of
// being buried in the code paths that use them.
const (
	// smallest investment we will build a suggestion for
	MinInvestmentUSD = 5000

	// cap on resolved portfolio size so allocations don't spread too thin
	MaxPortfolioSize = 10

	// substituted when screening matches nothing, instead of
	// returning an empty portfolio
	FallbackTicker = "MSFT"

	// assumed debt/equity when the snapshot is missing one; high
	// enough to fail the quality screen rather than silently pass
	DefaultDebtToEquity = 100.0

	// trend-weight moving average lookback, and the minimum number of
	// observations before the average is considered defined
	SMAWindow     = 20
	SMAMinPeriods = 5

	// number of trailing rows replayed by the trend reconstructor
	TrendLookbackDays = 5

	// calendar days of history requested upstream; wide enough to
	// cover TrendLookbackDays trading days over weekends
	HistoryFetchDays = 7
)
