package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var (
	_ chart.Series = &BrickSeries{}
	_ chart.Series = &CandleSeries{}
	_ chart.Series = &VolumeSeries{}
)

// BrickSeries draws renko bricks as filled boxes, one slot wide, at the x slot of their row.
type BrickSeries struct {
	Name   string
	Bricks types.BrickSlice
}

func (bs *BrickSeries) GetName() string {
	return bs.Name
}

func (bs *BrickSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeColor: ColorGreen,
		StrokeWidth: 1.0,
	}
}

func (bs *BrickSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (bs *BrickSeries) Validate() error {
	return nil
}

func (bs *BrickSeries) Render(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, style chart.Style) {
	for _, brick := range bs.Bricks {
		x := float64(brick.Index)
		if !inRange(xRange, x) {
			continue
		}

		fill := ColorGreen
		if brick.Color == types.ColorRed {
			fill = ColorRed
		}

		drawBox(r, b, xRange, yRange, x-0.5, x+0.5, brick.Low(), brick.High(), fill, ColorBlack)
	}
}

// CandleSeries draws a high-low wick and an open-close body per row.
type CandleSeries struct {
	Name string
	Rows []types.PriceRow
}

func (cs *CandleSeries) GetName() string {
	return cs.Name
}

func (cs *CandleSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeColor: ColorGreen,
		StrokeWidth: 1.0,
	}
}

func (cs *CandleSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (cs *CandleSeries) Validate() error {
	return nil
}

func (cs *CandleSeries) Render(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, style chart.Style) {
	for i, row := range cs.Rows {
		x := float64(i)
		if !inRange(xRange, x) {
			continue
		}

		color := ColorGreen
		if row.Color() == types.ColorRed {
			color = ColorRed
		}

		cx := b.Left + xRange.Translate(x)
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.MoveTo(cx, b.Bottom-yRange.Translate(row.GetHigh()))
		r.LineTo(cx, b.Bottom-yRange.Translate(row.GetLow()))
		r.Stroke()

		drawBox(r, b, xRange, yRange, x-0.3, x+0.3, math.Min(row.Open, row.Close), math.Max(row.Open, row.Close), color, color)
	}
}

// VolumeSeries draws the volume of each row as a bar on the secondary axis.
type VolumeSeries struct {
	Name string
	Rows []types.PriceRow
}

func (vs *VolumeSeries) GetName() string {
	return vs.Name
}

func (vs *VolumeSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeColor: ColorGray,
		StrokeWidth: 1.0,
	}
}

func (vs *VolumeSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisSecondary
}

func (vs *VolumeSeries) Validate() error {
	return nil
}

func (vs *VolumeSeries) Render(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, style chart.Style) {
	for i, row := range vs.Rows {
		x := float64(i)
		if !inRange(xRange, x) || row.Volume <= 0 {
			continue
		}

		color := ColorGreen.WithAlpha(96)
		if row.Color() == types.ColorRed {
			color = ColorRed.WithAlpha(96)
		}

		drawBox(r, b, xRange, yRange, x-0.3, x+0.3, 0, row.Volume, color, color)
	}
}

func inRange(rng chart.Range, x float64) bool {
	return x >= rng.GetMin() && x <= rng.GetMax()
}

func drawBox(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, x0, x1, y0, y1 float64, fill, stroke drawing.Color) {
	left := b.Left + xRange.Translate(x0)
	right := b.Left + xRange.Translate(x1)
	top := b.Bottom - yRange.Translate(y1)
	bottom := b.Bottom - yRange.Translate(y0)

	// keep flat boxes visible
	if top == bottom {
		top--
	}

	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1.0)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.LineTo(left, top)
	r.Close()
	r.FillStroke()
}
