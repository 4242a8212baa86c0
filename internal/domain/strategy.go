package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStrategy = errors.New("invalid strategy")
	ErrEmptyTickerList = errors.New("empty ticker list")
	ErrInvalidAmount   = errors.New("invalid investment amount")
)

// Strategy is a named investment theme. It maps to either a fixed
// instrument basket or a fundamentals screen.
type Strategy string

const (
	Strategy_Index   Strategy = "INDEX_INVESTING"
	Strategy_Ethical Strategy = "ETHICAL_INVESTING"
	Strategy_Growth  Strategy = "GROWTH_INVESTING"
	Strategy_Quality Strategy = "QUALITY_INVESTING"
	Strategy_Value   Strategy = "VALUE_INVESTING"
)

func NewStrategy(s string) (*Strategy, error) {
	m := map[string]Strategy{
		"INDEX_INVESTING":   Strategy_Index,
		"ETHICAL_INVESTING": Strategy_Ethical,
		"GROWTH_INVESTING":  Strategy_Growth,
		"QUALITY_INVESTING": Strategy_Quality,
		"VALUE_INVESTING":   Strategy_Value,
	}
	for k, v := range m {
		if strings.EqualFold(
			normalizeStrategyName(k),
			normalizeStrategyName(s),
		) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known strategy: %w", s, ErrInvalidStrategy)
}

// accepts both wire-style ("GROWTH_INVESTING") and display-style
// ("Growth Investing") names
func normalizeStrategyName(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

// ResolutionMode controls how a strategy is turned into tickers.
type ResolutionMode string

const (
	// fixed hand-curated basket per strategy
	ResolutionMode_Static ResolutionMode = "STATIC"
	// screen the candidate universe against the strategy's
	// fundamentals predicate
	ResolutionMode_Screening ResolutionMode = "SCREENING"
)

func NewResolutionMode(s string) (*ResolutionMode, error) {
	m := map[string]ResolutionMode{
		"STATIC":    ResolutionMode_Static,
		"SCREENING": ResolutionMode_Screening,
	}
	for k, v := range m {
		if strings.EqualFold(k, s) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known resolution mode", s)
}
