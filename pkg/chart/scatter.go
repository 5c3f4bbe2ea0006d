package chart

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jaky1206/renko-chart-demo/pkg/datatype/floats"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// ScatterChart draws the open, close, moving average and median of each row as dots.
// Zero values are missing values and are not drawn.
func ScatterChart(series *types.Series, opts Options) (*chart.Chart, error) {
	if series.Len() == 0 {
		return nil, ErrEmptySeries
	}

	window := opts.Window.Clamp(series.Len())
	opens := series.Opens()[window.Offset:window.End()]
	closes := series.Closes()[window.Offset:window.End()]

	minOpen, maxOpen, ok := floats.MinMax(opens, isZero)
	if !ok {
		return nil, ErrEmptySeries
	}

	maxClose := maxOpen
	if _, h, ok := floats.MinMax(closes, isZero); ok {
		maxClose = h
	}

	c := newChart(opts, window, series.Labels())

	columns := []struct {
		name   string
		values []float64
		color  drawing.Color
	}{
		{"Renko_Open", series.Opens(), ColorLightGray},
		{"Renko_Close", series.Closes(), ColorRed},
		{"Moving_Average", series.MovingAverages(), ColorBlue},
		{"Median", series.Medians(), ColorOrange},
	}

	for _, col := range columns {
		s := overlaySeries(col.name, col.values, window, col.color, chart.YAxisPrimary)
		if s == nil {
			continue
		}

		dots := s.(chart.ContinuousSeries)
		dots.Style = chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    3,
			DotColor:    col.color,
		}

		c.Series = append(c.Series, dots)
	}

	setYRange(&c.YAxis, minOpen*0.98, maxClose*1.02)
	return c, nil
}
