package indicator

import (
	"fmt"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// Enrich fills the moving average and the median of the close price and the volume regression
// of every row of the series.
func Enrich(series *types.Series, window int) error {
	if window <= 0 {
		return fmt.Errorf("rolling window must be positive, got %d", window)
	}

	closes := series.Closes()
	ma := RollingMean(closes, window)
	median := RollingMedian(closes, window)

	predictions, err := VolumeRegression(series)
	if err != nil {
		logRegression.WithError(err).Warnf("%s: linear regression is not available", series.Name)
		predictions = make([]float64, series.Len())
	}

	for i := range series.Rows {
		series.Rows[i].MovingAverage = ma[i]
		series.Rows[i].Median = median[i]
		series.Rows[i].LinearRegression = predictions[i]
	}

	return nil
}
