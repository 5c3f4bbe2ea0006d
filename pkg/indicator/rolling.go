package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jaky1206/renko-chart-demo/pkg/datatype/floats"
)

// DefaultWindow is the rolling window of the parsed renko files.
const DefaultWindow = 5

// RollingMean returns the mean of the trailing window of each value. The first window-1 values
// and the windows containing a non-finite value are 0. The means are rounded half to even.
func RollingMean(values []float64, window int) []float64 {
	return rolling(values, window, func(w []float64) float64 {
		return stat.Mean(w, nil)
	})
}

// RollingMedian is like RollingMean with the median of the window.
func RollingMedian(values []float64, window int) []float64 {
	return rolling(values, window, floats.Median)
}

func rolling(values []float64, window int, f func(w []float64) float64) []float64 {
	out := make([]float64, len(values))
	if window <= 0 {
		return out
	}

	for i := window - 1; i < len(values); i++ {
		w := values[i-window+1 : i+1]
		if !floats.AllFinite(w) {
			continue
		}

		out[i] = f(w)
	}

	return floats.Round(out)
}
