package internal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_CalculateCurrentValue(t *testing.T) {
	t.Run("sums shares times live price", func(t *testing.T) {
		allocation := testAllocation(map[string]int64{"A": 50, "B": 25})

		value := CalculateCurrentValue(allocation, map[string]float64{"A": 110, "B": 190})
		require.True(t, value.Equal(decimal.NewFromInt(50*110+25*190)))
	})

	t.Run("holding with no quote contributes zero", func(t *testing.T) {
		allocation := testAllocation(map[string]int64{"A": 50, "B": 25})

		value := CalculateCurrentValue(allocation, map[string]float64{"A": 110})
		require.True(t, value.Equal(decimal.NewFromInt(5500)))
	})

	t.Run("nil allocation values to zero", func(t *testing.T) {
		value := CalculateCurrentValue(nil, map[string]float64{"A": 110})
		require.True(t, value.IsZero())
	})
}
