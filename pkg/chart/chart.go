// Package chart renders price series and renko bricks with go-chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/leekchan/accounting"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrEmptySeries = errors.New("nothing to draw")

var (
	ColorGreen     = drawing.ColorFromHex("2ca02c")
	ColorRed       = drawing.ColorFromHex("d62728")
	ColorBlack     = drawing.ColorFromHex("000000")
	ColorBlue      = drawing.ColorFromHex("0000ff")
	ColorOrange    = drawing.ColorFromHex("ffa500")
	ColorPurple    = drawing.ColorFromHex("800080")
	ColorLightGray = drawing.ColorFromHex("d3d3d3")
	ColorGray      = drawing.ColorFromHex("7f7f7f")
)

// maxTicks is the largest number of labels drawn on the x axis.
const maxTicks = 12

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}

	return "", fmt.Errorf("unsupported image format %q", s)
}

func (f Format) RendererProvider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}

	return chart.PNG
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}

	return "image/png"
}

// Viewport is the visible window of x slots: [Offset, Offset+Size).
type Viewport struct {
	Offset int `json:"offset"`
	Size   int `json:"size"`
}

// Clamp fits the viewport into total slots. A zero or negative size shows every slot.
func (v Viewport) Clamp(total int) Viewport {
	if total <= 0 {
		return Viewport{}
	}

	size := v.Size
	if size <= 0 || size > total {
		size = total
	}

	offset := v.Offset
	if offset > total-size {
		offset = total - size
	}

	if offset < 0 {
		offset = 0
	}

	return Viewport{Offset: offset, Size: size}
}

func (v Viewport) End() int {
	return v.Offset + v.Size
}

func (v Viewport) Contains(index int) bool {
	return index >= v.Offset && index < v.End()
}

// InitialViewport shows the last size slots.
func InitialViewport(total, size int) Viewport {
	return Viewport{Offset: total - size, Size: size}.Clamp(total)
}

type Options struct {
	Title      string
	Width      int
	Height     int
	ShowLegend bool
	ShowVolume bool

	// ShowTrendLine draws the least squares line of the close price.
	ShowTrendLine bool

	Window Viewport
	Format Format
}

func DefaultOptions() Options {
	return Options{
		Width:  1280,
		Height: 720,
		Window: Viewport{Size: 10},
		Format: FormatPNG,
	}
}

func newChart(opts Options, window Viewport, labels []string) *chart.Chart {
	c := &chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{
				Min: float64(window.Offset) - 0.5,
				Max: float64(window.End()) - 0.5,
			},
			Ticks: slotTicks(window, labels),
			TickStyle: chart.Style{
				TextRotationDegrees: 45.0,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: PriceValueFormatter,
		},
	}

	if opts.ShowLegend {
		c.Elements = []chart.Renderable{
			chart.LegendLeft(c),
		}
	}

	return c
}

func slotTicks(window Viewport, labels []string) []chart.Tick {
	step := int(math.Ceil(float64(window.Size) / maxTicks))
	if step < 1 {
		step = 1
	}

	// the outer ticks keep the half slot margins when the axis range follows the ticks
	ticks := []chart.Tick{{Value: float64(window.Offset) - 0.5}}
	for i := window.Offset; i < window.End() && i < len(labels); i += step {
		ticks = append(ticks, chart.Tick{
			Value: float64(i),
			Label: labels[i],
		})
	}

	return append(ticks, chart.Tick{Value: float64(window.End()) - 0.5})
}

func setYRange(axis *chart.YAxis, low, high float64) {
	if low == high {
		low, high = low-1, high+1
	}

	axis.Range = &chart.ContinuousRange{Min: low, Max: high}
}

// overlaySeries draws the non-zero values of the window as a line, nil when nothing is left.
func overlaySeries(name string, values []float64, window Viewport, color drawing.Color, yAxis chart.YAxisType) chart.Series {
	var xs, ys []float64
	for i := window.Offset; i < window.End() && i < len(values); i++ {
		v := values[i]
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		xs = append(xs, float64(i))
		ys = append(ys, v)
	}

	if len(xs) == 0 {
		return nil
	}

	return chart.ContinuousSeries{
		Name:    name,
		YAxis:   yAxis,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2.0,
		},
	}
}

// PriceValueFormatter formats the axis values with thousands separators.
func PriceValueFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}

	precision := 0
	if math.Abs(f-math.Round(f)) > 1e-9 {
		precision = 2
	}

	s := accounting.FormatNumberFloat64(math.Abs(f), precision, ",", ".")
	if f < 0 {
		return "-" + s
	}

	return s
}

func Render(c *chart.Chart, w io.Writer, format Format) error {
	return c.Render(format.RendererProvider(), w)
}

// Save renders the chart into a file, the format follows the file extension.
func Save(c *chart.Chart, path string) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer f.Close()

	if err := Render(c, f, format); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	return f.Close()
}
