package types

import (
	"fmt"
	"math"
	"strconv"
)

type Direction int

const DirectionUp = 1
const DirectionNone = 0
const DirectionDown = -1

// PriceRow is one chronological row of a price series. A candlestick row carries the full
// OHLCV set, a renko row only carries open, close and volume plus the overlay values computed
// by the parser.
type PriceRow struct {
	// Time is the parsed time label, EndTime is only set by the formats that carry it.
	Time    Time `json:"time"`
	EndTime Time `json:"endTime,omitempty"`

	// Label is the raw time label text as it was read from the source.
	Label string `json:"label"`

	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high,omitempty"`
	Low    float64 `json:"low,omitempty"`
	Volume float64 `json:"volume"`

	MovingAverage    float64 `json:"movingAverage,omitempty"`
	Median           float64 `json:"median,omitempty"`
	LinearRegression float64 `json:"linearRegression,omitempty"`

	// ColorHint is the brick color exported by the charting platform, if any.
	ColorHint Color `json:"color,omitempty"`
}

// GetLabel returns the text used for the x axis.
func (r PriceRow) GetLabel() string {
	if len(r.Label) > 0 {
		return r.Label
	}

	return r.Time.Format()
}

func (r PriceRow) GetChange() float64 {
	return r.Close - r.Open
}

func (r PriceRow) Direction() Direction {
	if r.Close > r.Open {
		return DirectionUp
	} else if r.Close < r.Open {
		return DirectionDown
	}

	return DirectionNone
}

// Color returns the net movement color of the row, a flat row counts as green.
func (r PriceRow) Color() Color {
	return ColorOf(r.Open, r.Close)
}

// GetHigh returns the high price, renko rows do not carry one so the body top is used.
func (r PriceRow) GetHigh() float64 {
	if r.High != 0 {
		return r.High
	}

	return math.Max(r.Open, r.Close)
}

// GetLow returns the low price, renko rows do not carry one so the body bottom is used.
func (r PriceRow) GetLow() float64 {
	if r.Low != 0 {
		return r.Low
	}

	return math.Min(r.Open, r.Close)
}

func (r PriceRow) String() string {
	return fmt.Sprintf("%s O: %s C: %s V: %s",
		r.GetLabel(),
		strconv.FormatFloat(r.Open, 'f', -1, 64),
		strconv.FormatFloat(r.Close, 'f', -1, 64),
		strconv.FormatFloat(r.Volume, 'f', -1, 64))
}
