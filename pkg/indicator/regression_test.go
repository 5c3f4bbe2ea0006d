package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

func newSeries(opens, closes, volumes []float64) *types.Series {
	series := &types.Series{Name: "test"}
	for i := range opens {
		series.Rows = append(series.Rows, types.PriceRow{
			Open:   opens[i],
			Close:  closes[i],
			Volume: volumes[i],
		})
	}
	return series
}

func TestVolumeRegression(t *testing.T) {
	opens := []float64{100, 110, 105, 120, 115, 130}
	closes := []float64{110, 100, 115, 110, 125, 120}

	var volumes []float64
	for i := range opens {
		volumes = append(volumes, 100+2*opens[i]+3*closes[i])
	}

	predictions, err := VolumeRegression(newSeries(opens, closes, volumes))
	require.NoError(t, err)
	assert.Equal(t, volumes, predictions)
}

func TestVolumeRegression_NotEnoughData(t *testing.T) {
	_, err := VolumeRegression(newSeries([]float64{100}, []float64{110}, []float64{10}))
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestEnrich(t *testing.T) {
	opens := []float64{100, 110, 105, 120, 115, 130}
	closes := []float64{110, 100, 115, 110, 125, 120}
	volumes := []float64{800, 720, 910, 860, 1000, 990}
	series := newSeries(opens, closes, volumes)

	require.NoError(t, Enrich(series, DefaultWindow))
	assert.Equal(t, []float64{0, 0, 0, 0, 112, 114}, series.MovingAverages())
	assert.Equal(t, []float64{0, 0, 0, 0, 110, 115}, series.Medians())
	assert.Len(t, series.LinearRegressions(), series.Len())
	assert.True(t, series.HasOverlays())

	assert.Error(t, Enrich(series, 0))

	// a single row can not be fitted, the regression is left empty
	single := newSeries([]float64{100}, []float64{110}, []float64{10})
	require.NoError(t, Enrich(single, DefaultWindow))
	assert.Equal(t, []float64{0}, single.LinearRegressions())
}
