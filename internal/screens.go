package internal

import (
	"stocksuggest/internal/domain"

	"github.com/maja42/goval"
)

// Each screening strategy is a boolean expression over an instrument's
// fundamentals. Absent attributes are simply not bound as variables, so
// the expression errors and the instrument fails the screen - absence
// never passes. debtToEquity is the one documented exception: it gets
// DefaultDebtToEquity bound instead.
var screenExpressions = map[domain.Strategy]string{
	domain.Strategy_Ethical: `!(sector == "Energy" || sector == "Utilities" || sector == "Basic Materials")`,
	domain.Strategy_Growth:  `revenueGrowth > 0.15`,
	domain.Strategy_Quality: `returnOnEquity > 0.15 && debtToEquity < 50`,
	domain.Strategy_Value:   `trailingPE > 0 && trailingPE < 25`,
}

func screenVariables(instrument domain.Instrument) map[string]interface{} {
	vars := map[string]interface{}{
		"debtToEquity": DefaultDebtToEquity,
	}
	if instrument.Sector != nil {
		vars["sector"] = *instrument.Sector
	}
	if instrument.RevenueGrowth != nil {
		vars["revenueGrowth"] = *instrument.RevenueGrowth
	}
	if instrument.ReturnOnEquity != nil {
		vars["returnOnEquity"] = *instrument.ReturnOnEquity
	}
	if instrument.DebtToEquity != nil {
		vars["debtToEquity"] = *instrument.DebtToEquity
	}
	if instrument.TrailingPE != nil {
		vars["trailingPE"] = *instrument.TrailingPE
	}
	return vars
}

func passesScreen(strategy domain.Strategy, instrument domain.Instrument) bool {
	expression, ok := screenExpressions[strategy]
	if !ok {
		return false
	}

	result, err := goval.NewEvaluator().Evaluate(expression, screenVariables(instrument), nil)
	if err != nil {
		// unknown variable means the attribute is missing; fail closed
		return false
	}

	pass, ok := result.(bool)
	return ok && pass
}
