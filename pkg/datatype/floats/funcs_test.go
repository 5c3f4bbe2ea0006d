package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 12.0, Median([]float64{13.0, 10.0, 12.0, 11.0, 15.0}))
	assert.Equal(t, 2.0, Median([]float64{3.0, 1.0}))
	assert.True(t, math.IsNaN(Median(nil)))

	arr := []float64{3, 1, 2}
	Median(arr)
	assert.Equal(t, []float64{3, 1, 2}, arr)
}

func TestMinMax(t *testing.T) {
	low, high, ok := MinMax([]float64{0, 10, math.NaN(), 5, math.Inf(1)}, nil)
	assert.True(t, ok)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 10.0, high)

	low, _, ok = MinMax([]float64{0, 10, 5}, func(v float64) bool { return v == 0 })
	assert.True(t, ok)
	assert.Equal(t, 5.0, low)

	_, _, ok = MinMax([]float64{math.NaN()}, nil)
	assert.False(t, ok)
}

func TestRound(t *testing.T) {
	assert.Equal(t, []float64{2, 4, 0, 0, 3}, Round([]float64{2.5, 3.5, math.NaN(), math.Inf(-1), 2.6}))
}
