package domain

// Instrument is a tradeable symbol plus whatever fundamentals the data
// snapshot happens to carry. Nil pointers mean the attribute is absent,
// which is not the same as zero - screens treat absence as a failed
// check unless a default is spelled out.
type Instrument struct {
	Symbol         string   `csv:"symbol"`
	Name           string   `csv:"name"`
	Sector         *string  `csv:"sector"`
	RevenueGrowth  *float64 `csv:"revenue_growth"`
	ReturnOnEquity *float64 `csv:"return_on_equity"`
	DebtToEquity   *float64 `csv:"debt_to_equity"`
	TrailingPE     *float64 `csv:"trailing_pe"`
}
