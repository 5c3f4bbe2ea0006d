package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollingMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		window int
		want   []float64
	}{
		{
			name:   "window 5",
			values: []float64{1, 2, 3, 4, 5, 6},
			window: 5,
			want:   []float64{0, 0, 0, 0, 3, 4},
		},
		{
			name:   "half to even",
			values: []float64{1, 2, 3, 4, 5, 6},
			window: 2,
			want:   []float64{0, 2, 2, 4, 4, 6},
		},
		{
			name:   "window with NaN",
			values: []float64{1, math.NaN(), 3, 5},
			window: 2,
			want:   []float64{0, 0, 0, 4},
		},
		{
			name:   "window longer than values",
			values: []float64{1, 2},
			window: 5,
			want:   []float64{0, 0},
		},
		{
			name:   "invalid window",
			values: []float64{1, 2},
			window: 0,
			want:   []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RollingMean(tt.values, tt.window))
		})
	}
}

func TestRollingMedian(t *testing.T) {
	values := []float64{18500, 18510, 18520, 18500, 18490, 18480, 18530}
	assert.Equal(t, []float64{0, 0, 0, 0, 18500, 18500, 18500}, RollingMedian(values, 5))
	assert.Equal(t, []float64{0, 18505, 18515, 18510, 18495, 18485, 18505}, RollingMedian(values, 2))
}

func TestTrendLine(t *testing.T) {
	assert.InDeltaSlice(t, []float64{1, 3, 5, 7}, TrendLine([]float64{1, 3, 5, 7}), 1e-9)
	assert.InDeltaSlice(t, []float64{1, 3, 5, 7}, TrendLine([]float64{1, math.NaN(), 5, 7}), 1e-9)
	assert.Nil(t, TrendLine([]float64{1}))
}
