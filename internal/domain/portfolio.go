package domain

import (
	"github.com/shopspring/decimal"
)

// Holding is one whole-share position in a suggested allocation.
// AllocatedUSD is always Shares * price at allocation time.
type Holding struct {
	Symbol       string
	AllocatedUSD decimal.Decimal
	Shares       int64
	WeightPct    float64
}

// Allocation is the output of the allocator: holdings in resolution
// order plus the cash that could not be converted into whole shares.
type Allocation struct {
	Holdings     []Holding
	LeftoverCash decimal.Decimal
}

func NewAllocation(amount decimal.Decimal) *Allocation {
	return &Allocation{
		Holdings:     []Holding{},
		LeftoverCash: amount,
	}
}

func (a Allocation) HeldSymbols() []string {
	symbols := []string{}
	for _, h := range a.Holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}

func (a Allocation) Empty() bool {
	return len(a.Holdings) == 0
}

// TrendPoint is one day of reconstructed portfolio value.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"portfolioValueUsd"`
}
