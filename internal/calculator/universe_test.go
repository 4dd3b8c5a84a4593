package calculator

import (
	"alphalab/internal/domain"
	"alphalab/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_FilterUniverse(t *testing.T) {
	d2, d3 := util.NewDate(2020, 1, 2), util.NewDate(2020, 1, 3)
	row := func(date, assetID string, price float64, signal *float64) domain.SignalObservation {
		return domain.SignalObservation{
			AssetObservation: domain.AssetObservation{
				Date:          util.MustParseDate(date),
				AssetID:       assetID,
				Price:         domain.FloatPointer(price),
				SpecificRisk:  domain.FloatPointer(0.25),
				PredictedBeta: domain.FloatPointer(0.9),
			},
			Signal: signal,
		}
	}

	t.Run("uses previous period price", func(t *testing.T) {
		rows := []domain.SignalObservation{
			row("2020-01-01", "AAA", 10, domain.FloatPointer(1)),
			row("2020-01-01", "BBB", 3, domain.FloatPointer(2)),
			row("2020-01-02", "AAA", 4, domain.FloatPointer(3)),
			row("2020-01-02", "BBB", 6, domain.FloatPointer(4)),
			row("2020-01-03", "AAA", 4, domain.FloatPointer(5)),
			row("2020-01-03", "BBB", 5, domain.FloatPointer(6)),
		}
		out := FilterUniverse(rows, 5)

		// first rows have no lag, AAA on d3 lags 4, BBB on d2 lags 3
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.FilteredObservation{
					{Date: d2, AssetID: "AAA", Signal: 3, SpecificRisk: 0.25, PredictedBeta: 0.9},
					{Date: d3, AssetID: "BBB", Signal: 6, SpecificRisk: 0.25, PredictedBeta: 0.9},
				},
				out,
			),
		)
	})

	t.Run("price equal to threshold is excluded", func(t *testing.T) {
		rows := []domain.SignalObservation{
			row("2020-01-01", "AAA", 5, domain.FloatPointer(1)),
			row("2020-01-02", "AAA", 5, domain.FloatPointer(1)),
		}
		require.Empty(t, FilterUniverse(rows, 5))
	})

	t.Run("missing fields are dropped", func(t *testing.T) {
		rows := []domain.SignalObservation{
			row("2020-01-01", "AAA", 10, domain.FloatPointer(1)),
			row("2020-01-01", "BBB", 10, domain.FloatPointer(1)),
			row("2020-01-01", "CCC", 10, domain.FloatPointer(1)),
			row("2020-01-01", "DDD", 10, domain.FloatPointer(1)),
			row("2020-01-02", "AAA", 10, nil),
			row("2020-01-02", "BBB", 10, domain.FloatPointer(1)),
			row("2020-01-02", "CCC", 10, domain.FloatPointer(1)),
			row("2020-01-02", "DDD", 10, domain.FloatPointer(1)),
		}
		rows[5].SpecificRisk = nil
		rows[6].PredictedBeta = nil
		out := FilterUniverse(rows, 5)

		require.Len(t, out, 1)
		require.Equal(t, "DDD", out[0].AssetID)
	})

	t.Run("missing lagged price drops the row", func(t *testing.T) {
		rows := []domain.SignalObservation{
			row("2020-01-01", "AAA", 10, domain.FloatPointer(1)),
			row("2020-01-02", "AAA", 10, domain.FloatPointer(1)),
			row("2020-01-03", "AAA", 10, domain.FloatPointer(1)),
		}
		rows[1].Price = nil
		out := FilterUniverse(rows, 5)

		require.Len(t, out, 1)
		require.Equal(t, d2, out[0].Date)
	})
}
