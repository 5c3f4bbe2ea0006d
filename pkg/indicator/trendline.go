package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jaky1206/renko-chart-demo/pkg/datatype/floats"
)

// TrendLine returns the least squares line of values over their slot index.
// Non-finite values are left out of the fit. Less than two points give nil.
func TrendLine(values []float64) []float64 {
	var xs, ys []float64
	for i, v := range values {
		if !floats.IsFinite(v) {
			continue
		}

		xs = append(xs, float64(i))
		ys = append(ys, v)
	}

	if len(xs) < 2 {
		return nil
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	line := make([]float64, len(values))
	for i := range line {
		line[i] = alpha + beta*float64(i)
	}

	return line
}
