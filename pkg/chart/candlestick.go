package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// CandlestickChart draws one candle per row, the y range covers the visible highs and lows.
func CandlestickChart(series *types.Series, opts Options) (*chart.Chart, error) {
	if series.Len() == 0 {
		return nil, ErrEmptySeries
	}

	window := opts.Window.Clamp(series.Len())
	c := newChart(opts, window, series.Labels())
	c.Series = append(c.Series, &CandleSeries{
		Name: "Candles",
		Rows: series.Rows,
	})

	low, high := math.Inf(1), math.Inf(-1)
	for _, r := range series.Rows[window.Offset:window.End()] {
		low = math.Min(low, r.GetLow())
		high = math.Max(high, r.GetHigh())
	}

	pad := (high - low) * 0.02
	setYRange(&c.YAxis, low-pad, high+pad)

	if s := overlaySeries("Moving Average", series.MovingAverages(), window, ColorBlue, chart.YAxisPrimary); s != nil {
		c.Series = append(c.Series, s)
	}

	if opts.ShowVolume {
		addVolume(c, series, window, false)
	}

	return c, nil
}
