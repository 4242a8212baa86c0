package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewUniverseRepository(t *testing.T) {
	repo, err := NewUniverseRepository()
	require.NoError(t, err)

	instruments, err := repo.List()
	require.NoError(t, err)
	require.NotEmpty(t, instruments)

	bySymbol := map[string]int{}
	for i, instrument := range instruments {
		bySymbol[instrument.Symbol] = i
	}

	t.Run("contains the index basket with no fundamentals", func(t *testing.T) {
		for _, symbol := range []string{"VOO", "QQQ", "VTI", "BND", "IVV", "SPY"} {
			idx, ok := bySymbol[symbol]
			require.True(t, ok, "universe missing %s", symbol)
			require.Nil(t, instruments[idx].Sector)
			require.Nil(t, instruments[idx].TrailingPE)
		}
	})

	t.Run("blank cells parse as absent attributes", func(t *testing.T) {
		idx, ok := bySymbol["SNOW"]
		require.True(t, ok)
		require.NotNil(t, instruments[idx].RevenueGrowth)
		require.Nil(t, instruments[idx].ReturnOnEquity)
		require.Nil(t, instruments[idx].TrailingPE)
	})

	t.Run("populated fundamentals parse as floats", func(t *testing.T) {
		idx, ok := bySymbol["NVDA"]
		require.True(t, ok)
		require.NotNil(t, instruments[idx].RevenueGrowth)
		require.Greater(t, *instruments[idx].RevenueGrowth, 0.15)
		require.NotNil(t, instruments[idx].Sector)
		require.Equal(t, "Technology", *instruments[idx].Sector)
	})
}
