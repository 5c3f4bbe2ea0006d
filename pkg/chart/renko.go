package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jaky1206/renko-chart-demo/pkg/datatype/floats"
	"github.com/jaky1206/renko-chart-demo/pkg/indicator"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// RenkoChart draws the bricks of the series with the moving average and the median overlays.
// The y range covers the visible bricks padded by one brick size.
func RenkoChart(series *types.Series, bricks types.BrickSlice, brickSize float64, opts Options) (*chart.Chart, error) {
	if series.Len() == 0 {
		return nil, ErrEmptySeries
	}

	window := opts.Window.Clamp(series.Len())
	c := newChart(opts, window, series.Labels())

	var visible types.BrickSlice
	for _, b := range bricks {
		if window.Contains(b.Index) {
			visible = append(visible, b)
		}
	}

	var low, high float64
	if len(visible) > 0 {
		low, high = visible.PriceRange()
	} else {
		rows := series.Rows[window.Offset:window.End()]
		low, high = math.Inf(1), math.Inf(-1)
		for _, r := range rows {
			low = math.Min(low, math.Min(r.Open, r.Close))
			high = math.Max(high, math.Max(r.Open, r.Close))
		}
	}

	c.Series = append(c.Series, &BrickSeries{
		Name:   "Renko Bricks",
		Bricks: visible,
	})

	overlays := []struct {
		name   string
		values []float64
		color  drawing.Color
	}{
		{"Moving Average", series.MovingAverages(), ColorBlue},
		{"Median", series.Medians(), ColorOrange},
	}

	for _, o := range overlays {
		s := overlaySeries(o.name, o.values, window, o.color, chart.YAxisPrimary)
		if s == nil {
			continue
		}

		c.Series = append(c.Series, s)
		if l, h, ok := floats.MinMax(o.values[window.Offset:window.End()], isZero); ok {
			low, high = math.Min(low, l), math.Max(high, h)
		}
	}

	if opts.ShowTrendLine {
		if line := indicator.TrendLine(series.Closes()); line != nil {
			if s := overlaySeries("Trend", line, window, ColorGray, chart.YAxisPrimary); s != nil {
				c.Series = append(c.Series, s)
			}
		}
	}

	pad := brickSize
	if pad <= 0 || math.IsNaN(pad) {
		pad = (high - low) * 0.01
	}

	setYRange(&c.YAxis, low-pad, high+pad)

	if opts.ShowVolume {
		addVolume(c, series, window, true)
	}

	return c, nil
}

// addVolume draws the volume bars in the lower third of the chart.
func addVolume(c *chart.Chart, series *types.Series, window Viewport, withRegression bool) {
	volumes := series.Volumes()[window.Offset:window.End()]
	_, maxVolume, ok := floats.MinMax(volumes, nil)
	if !ok || maxVolume <= 0 {
		return
	}

	c.Series = append(c.Series, &VolumeSeries{
		Name: "Volume",
		Rows: series.Rows,
	})

	if withRegression {
		if s := overlaySeries("Linear Regression", series.LinearRegressions(), window, ColorPurple, chart.YAxisSecondary); s != nil {
			c.Series = append(c.Series, s)
		}
	}

	c.YAxisSecondary = chart.YAxis{
		ValueFormatter: PriceValueFormatter,
		Range:          &chart.ContinuousRange{Min: 0, Max: maxVolume * 3},
	}
}

func isZero(v float64) bool {
	return v == 0
}
