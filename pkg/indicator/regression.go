package indicator

import (
	"errors"
	"fmt"

	"github.com/sajari/regression"
	"github.com/sirupsen/logrus"

	"github.com/jaky1206/renko-chart-demo/pkg/datatype/floats"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var logRegression = logrus.WithField("indicator", "VolumeRegression")

var ErrNotEnoughData = errors.New("not enough data points")

// VolumeRegression fits Volume = c + a*Open + b*Close with ordinary least squares and returns the
// predicted volume of every row, rounded half to even. Rows with a non-finite value are not used
// for fitting and predict 0.
//
// When open and close are collinear the fit falls back to Volume = c + b*Close.
func VolumeRegression(series *types.Series) ([]float64, error) {
	opens, closes, volumes := series.Opens(), series.Closes(), series.Volumes()

	predictions, err := fitAndPredict(volumes, opens, closes)
	if err != nil {
		logRegression.WithError(err).Debugf("%s: falling back to the close price only", series.Name)
		predictions, err = fitAndPredict(volumes, closes)
		if err != nil {
			return nil, err
		}
	}

	return floats.Round(predictions), nil
}

func fitAndPredict(observed []float64, variables ...[]float64) ([]float64, error) {
	r := new(regression.Regression)
	r.SetObserved("Volume")
	for i := range variables {
		r.SetVar(i, fmt.Sprintf("X%d", i))
	}

	rowOf := func(i int) ([]float64, bool) {
		row := make([]float64, len(variables))
		for v := range variables {
			row[v] = variables[v][i]
		}
		return row, floats.AllFinite(row)
	}

	var points regression.DataPoints
	for i := range observed {
		row, ok := rowOf(i)
		if !ok || !floats.IsFinite(observed[i]) {
			continue
		}

		points = append(points, regression.DataPoint(observed[i], row))
	}

	if len(points) < len(variables)+1 {
		return nil, fmt.Errorf("%w: %d rows for %d variables", ErrNotEnoughData, len(points), len(variables))
	}

	r.Train(points...)
	if err := r.Run(); err != nil {
		return nil, err
	}

	for i := 0; i <= len(variables); i++ {
		if !floats.IsFinite(r.Coeff(i)) {
			return nil, fmt.Errorf("singular regression: %s", r.Formula)
		}
	}

	predictions := make([]float64, len(observed))
	for i := range observed {
		row, ok := rowOf(i)
		if !ok {
			continue
		}

		p, err := r.Predict(row)
		if err != nil {
			return nil, err
		}

		predictions[i] = p
	}

	return predictions, nil
}
