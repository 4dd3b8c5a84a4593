package calculator

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func Test_hasDispersion(t *testing.T) {
	check := func(dataset []float64) bool {
		mean, err := stats.Mean(dataset)
		require.NoError(t, err)
		stdev, err := stats.StandardDeviationPopulation(dataset)
		require.NoError(t, err)
		return hasDispersion(dataset, mean, stdev)
	}

	t.Run("identical values", func(t *testing.T) {
		require.False(t, check([]float64{0.1, 0.1, 0.1}))
		require.False(t, check([]float64{0.7, 0.7, 0.7, 0.7, 0.7}))
		require.False(t, check([]float64{-3, -3}))
	})

	t.Run("real spread", func(t *testing.T) {
		require.True(t, check([]float64{0.1, 0.2, 0.3}))
		require.True(t, check([]float64{1e-6, 2e-6}))
	})

	t.Run("stdev that is only rounding noise", func(t *testing.T) {
		require.False(t, hasDispersion([]float64{1e6, 1e6 + 1e-9}, 1e6, 5e-10))
	})

	t.Run("non finite stdev", func(t *testing.T) {
		require.False(t, hasDispersion([]float64{1, 2}, 1.5, math.NaN()))
	})
}
