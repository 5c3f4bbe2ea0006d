package types

import (
	"math"
	"strconv"
)

var _ CsvFormatter = &Series{}

// Series is a named, chronologically ordered list of price rows loaded from one file or one
// database window.
type Series struct {
	Name   string     `json:"name"`
	Source string     `json:"source"`
	Rows   []PriceRow `json:"rows"`
}

func (s *Series) Len() int {
	return len(s.Rows)
}

func (s *Series) Opens() []float64 {
	return s.column(func(r PriceRow) float64 { return r.Open })
}

func (s *Series) Closes() []float64 {
	return s.column(func(r PriceRow) float64 { return r.Close })
}

func (s *Series) Volumes() []float64 {
	return s.column(func(r PriceRow) float64 { return r.Volume })
}

func (s *Series) MovingAverages() []float64 {
	return s.column(func(r PriceRow) float64 { return r.MovingAverage })
}

func (s *Series) Medians() []float64 {
	return s.column(func(r PriceRow) float64 { return r.Median })
}

func (s *Series) LinearRegressions() []float64 {
	return s.column(func(r PriceRow) float64 { return r.LinearRegression })
}

func (s *Series) Labels() []string {
	labels := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		labels[i] = r.GetLabel()
	}
	return labels
}

func (s *Series) column(f func(r PriceRow) float64) []float64 {
	values := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		values[i] = f(r)
	}
	return values
}

// PriceRange returns the lowest low and the highest high of the series.
func (s *Series) PriceRange() (low, high float64) {
	if len(s.Rows) == 0 {
		return 0, 0
	}

	low, high = math.Inf(1), math.Inf(-1)
	for _, r := range s.Rows {
		low = math.Min(low, r.GetLow())
		high = math.Max(high, r.GetHigh())
	}

	return low, high
}

// HasOverlays reports whether any row carries moving average or median values.
func (s *Series) HasOverlays() bool {
	for _, r := range s.Rows {
		if r.MovingAverage != 0 || r.Median != 0 {
			return true
		}
	}

	return false
}

func (s *Series) CsvHeader() []string {
	return []string{
		"Time_Start",
		"Renko_Open",
		"Renko_Close",
		"Volume",
		"Moving_Average",
		"Median",
		"Linear Regression",
	}
}

func (s *Series) CsvRecords() [][]string {
	var records [][]string
	for _, r := range s.Rows {
		records = append(records, []string{
			r.GetLabel(),
			FormatPrice(r.Open),
			FormatPrice(r.Close),
			FormatPrice(r.Volume),
			FormatPrice(r.MovingAverage),
			FormatPrice(r.Median),
			FormatPrice(r.LinearRegression),
		})
	}

	return records
}

// FormatPrice formats the price with the fewest digits that keep its value.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
