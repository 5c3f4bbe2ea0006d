package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/jaky1206/renko-chart-demo/pkg/renko"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

func testSeries() *types.Series {
	series := &types.Series{Name: "NQ-2023-M8.csv"}
	prices := [][2]float64{
		{18500, 18510}, {18510, 18530}, {18530, 18505}, {18505, 18490},
		{18490, 18490}, {18490, 18520}, {18520, 18540}, {18540, 18515},
	}

	for i, p := range prices {
		series.Rows = append(series.Rows, types.PriceRow{
			Label:         "09:3" + string(rune('0'+i)) + ":00",
			Open:          p[0],
			Close:         p[1],
			High:          p[1] + 5,
			Low:           p[0] - 5,
			Volume:        float64(1000 + 100*i),
			MovingAverage: 18500 + float64(i),
			Median:        18505,
		})
	}

	return series
}

func TestViewport_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		view  Viewport
		total int
		want  Viewport
	}{
		{"inside", Viewport{Offset: 2, Size: 3}, 10, Viewport{Offset: 2, Size: 3}},
		{"past the end", Viewport{Offset: 9, Size: 3}, 10, Viewport{Offset: 7, Size: 3}},
		{"negative offset", Viewport{Offset: -4, Size: 3}, 10, Viewport{Offset: 0, Size: 3}},
		{"size larger than data", Viewport{Offset: 3, Size: 30}, 10, Viewport{Offset: 0, Size: 10}},
		{"zero size shows everything", Viewport{Offset: 3}, 10, Viewport{Offset: 0, Size: 10}},
		{"no data", Viewport{Offset: 3, Size: 3}, 0, Viewport{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.Clamp(tt.total))
		})
	}

	assert.Equal(t, Viewport{Offset: 900, Size: 100}, InitialViewport(1000, 100))
	assert.Equal(t, Viewport{Offset: 0, Size: 5}, InitialViewport(5, 100))
}

func TestSlotTicks(t *testing.T) {
	labels := make([]string, 40)
	for i := range labels {
		labels[i] = string(rune('a' + i%26))
	}

	ticks := slotTicks(Viewport{Offset: 10, Size: 30}, labels)
	require.True(t, len(ticks) <= maxTicks+2)
	assert.Equal(t, 9.5, ticks[0].Value)
	assert.Equal(t, 39.5, ticks[len(ticks)-1].Value)
	assert.Equal(t, 10.0, ticks[1].Value)
	assert.Equal(t, labels[10], ticks[1].Label)
}

func TestPriceValueFormatter(t *testing.T) {
	assert.Equal(t, "18,500", PriceValueFormatter(18500.0))
	assert.Equal(t, "1,234,567.50", PriceValueFormatter(1234567.5))
	assert.Equal(t, "-1,000", PriceValueFormatter(-1000.0))
	assert.Equal(t, "999", PriceValueFormatter(999.0))
	assert.Equal(t, "", PriceValueFormatter("x"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(".SVG")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestRenkoChart(t *testing.T) {
	series := testSeries()
	bricks, err := renko.Decompose(series.Rows, 10)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Title = "Renko Chart of " + series.Name
	opts.ShowLegend = true
	opts.ShowVolume = true
	opts.ShowTrendLine = true
	opts.Window = Viewport{Offset: 2, Size: 4}

	c, err := RenkoChart(series, bricks, 10, opts)
	require.NoError(t, err)

	for _, b := range c.Series[0].(*BrickSeries).Bricks {
		assert.True(t, b.Index >= 2 && b.Index < 6, "brick %s is out of the window", b)
	}

	yRange := c.YAxis.Range.(*chart.ContinuousRange)
	low, high := c.Series[0].(*BrickSeries).Bricks.PriceRange()
	assert.LessOrEqual(t, yRange.Min, low-10)
	assert.GreaterOrEqual(t, yRange.Max, high+10)

	var names []string
	for _, s := range c.Series {
		names = append(names, s.GetName())
	}
	assert.Equal(t, []string{"Renko Bricks", "Moving Average", "Median", "Trend", "Volume"}, names)

	var buf bytes.Buffer
	require.NoError(t, Render(c, &buf, FormatPNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	require.NoError(t, Render(c, &buf, FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenkoChart_SingleFlatRow(t *testing.T) {
	series := &types.Series{Rows: []types.PriceRow{{Label: "09:30:00", Open: 100, Close: 100}}}
	c, err := RenkoChart(series, nil, 10, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Render(c, &buf, FormatPNG))
}

func TestRenkoChart_Empty(t *testing.T) {
	_, err := RenkoChart(&types.Series{}, nil, 10, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestCandlestickChart(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowVolume = true
	opts.Window = Viewport{}

	c, err := CandlestickChart(testSeries(), opts)
	require.NoError(t, err)

	yRange := c.YAxis.Range.(*chart.ContinuousRange)
	assert.Less(t, yRange.Min, 18485.0)
	assert.Greater(t, yRange.Max, 18545.0)

	file := filepath.Join(t.TempDir(), "candlestick.png")
	require.NoError(t, Save(c, file))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	assert.Error(t, Save(c, filepath.Join(t.TempDir(), "candlestick.gif")))
}

func TestScatterChart(t *testing.T) {
	series := testSeries()
	series.Rows[0].Open = 0
	series.Rows[0].MovingAverage = 0

	opts := DefaultOptions()
	opts.Window = Viewport{Size: 8}

	c, err := ScatterChart(series, opts)
	require.NoError(t, err)
	require.Len(t, c.Series, 4)

	opens := c.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, 7, opens.Len(), "the zero open is not drawn")

	yRange := c.YAxis.Range.(*chart.ContinuousRange)
	assert.InDelta(t, 18490*0.98, yRange.Min, 1e-6)
	assert.InDelta(t, 18540*1.02, yRange.Max, 1e-6)

	var buf bytes.Buffer
	assert.NoError(t, Render(c, &buf, FormatPNG))

	_, err = ScatterChart(&types.Series{Rows: []types.PriceRow{{}}}, opts)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
