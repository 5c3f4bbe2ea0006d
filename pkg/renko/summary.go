package renko

import (
	"fmt"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// Summary counts the bricks of a decomposition.
type Summary struct {
	Rows      int `json:"rows"`
	FlatRows  int `json:"flatRows"`
	Bricks    int `json:"bricks"`
	Green     int `json:"green"`
	Red       int `json:"red"`
	Partial   int `json:"partial"`
	Reversals int `json:"reversals"`

	BrickSize float64 `json:"brickSize"`
	Low       float64 `json:"low"`
	High      float64 `json:"high"`

	// NetMove is the close of the last row minus the open of the first row.
	NetMove float64 `json:"netMove"`
}

// Summarize builds the summary of the bricks decomposed from rows with the given brick size.
func Summarize(rows []types.PriceRow, bricks types.BrickSlice, brickSize float64) Summary {
	s := Summary{
		Rows:      len(rows),
		Bricks:    len(bricks),
		BrickSize: brickSize,
	}

	for _, row := range rows {
		if row.Open == row.Close {
			s.FlatRows++
		}
	}

	if len(rows) > 0 {
		s.NetMove = rows[len(rows)-1].Close - rows[0].Open
	}

	s.Low, s.High = bricks.PriceRange()

	var prevColor types.Color
	for i, b := range bricks {
		switch b.Color {
		case types.ColorGreen:
			s.Green++
		case types.ColorRed:
			s.Red++
		}

		if b.Size() < brickSize {
			s.Partial++
		}

		if i > 0 && b.Color != prevColor {
			s.Reversals++
		}
		prevColor = b.Color
	}

	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d rows (%d flat) -> %d bricks: %d green, %d red, %d partial, %d reversals",
		s.Rows, s.FlatRows, s.Bricks, s.Green, s.Red, s.Partial, s.Reversals)
}
