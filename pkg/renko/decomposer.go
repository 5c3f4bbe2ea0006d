// Package renko decomposes open/close price moves into fixed size renko bricks.
package renko

import (
	"fmt"
	"math"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// DefaultBrickSize is the brick size used by the charts when none is configured.
const DefaultBrickSize = 10.0

// MaxBricks bounds the number of bricks of one decomposition.
const MaxBricks = 1_000_000

// Decomposer converts a chronological series of rows into stacked bricks.
// It holds no state between calls, so one Decomposer can be shared.
type Decomposer struct {
	BrickSize float64
}

func New(brickSize float64) (*Decomposer, error) {
	if err := validateBrickSize(brickSize); err != nil {
		return nil, err
	}

	return &Decomposer{BrickSize: brickSize}, nil
}

// Decompose is a shortcut of New(brickSize).Decompose(rows).
func Decompose(rows []types.PriceRow, brickSize float64) (types.BrickSlice, error) {
	d, err := New(brickSize)
	if err != nil {
		return nil, err
	}

	return d.Decompose(rows)
}

// Decompose walks the rows in order and emits the bricks of each row at the row's x slot.
//
// The running price starts at the open of the first row. When the net movement color of a
// row differs from the previous row, the running price first jumps one full brick in the new
// direction (the reversal gap), then the row is decomposed into full bricks and a final
// partial brick ending exactly at the close.
//
// A row whose open equals its close is a no-move row: it emits no bricks and does not take
// part in the reversal rule, but it still occupies its x slot.
func (d *Decomposer) Decompose(rows []types.PriceRow) (types.BrickSlice, error) {
	brickSize := d.BrickSize
	if err := validateBrickSize(brickSize); err != nil {
		return nil, err
	}

	if err := validateRows(rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	var bricks types.BrickSlice
	var currentY = rows[0].Open
	var prevColor types.Color

	for x, row := range rows {
		if row.Open == row.Close {
			continue
		}

		color := types.ColorOf(row.Open, row.Close)
		if len(prevColor) > 0 && color != prevColor {
			currentY += color.Sign() * brickSize
		}

		label := row.GetLabel()
		difference := row.Close - currentY
		if math.Abs(difference)/brickSize > float64(MaxBricks-len(bricks)) {
			return nil, fmt.Errorf("%w: brick size %v yields more than %d bricks at row %d",
				ErrInvalidConfiguration, brickSize, MaxBricks, x)
		}

		for math.Abs(difference) >= brickSize {
			step := brickSize
			if difference < 0 {
				step = -brickSize
			}

			// the step is below the float precision of the running price
			if currentY+step == currentY {
				return nil, fmt.Errorf("%w: brick size %v is too small for price %v",
					ErrInvalidConfiguration, brickSize, currentY)
			}

			bricks = append(bricks, types.Brick{
				Index: x,
				Label: label,
				Open:  currentY,
				Close: currentY + step,
				Color: color,
			})

			currentY += step
			difference = row.Close - currentY
		}

		if math.Abs(difference) > 0 {
			bricks = append(bricks, types.Brick{
				Index: x,
				Label: label,
				Open:  currentY,
				Close: row.Close,
				Color: color,
			})
			currentY = row.Close
		}

		prevColor = color
	}

	return bricks, nil
}

func validateBrickSize(brickSize float64) error {
	if math.IsNaN(brickSize) || math.IsInf(brickSize, 0) || brickSize <= 0 {
		return fmt.Errorf("%w: brick size must be a positive number, got %v", ErrInvalidConfiguration, brickSize)
	}

	return nil
}

// validateRows rejects the whole input before any brick is produced, so a failed call never
// returns partial output.
func validateRows(rows []types.PriceRow) error {
	for i, row := range rows {
		if !isFinite(row.Open) {
			return &MalformedInputError{Row: i, Field: "open", Value: row.Open}
		}

		if !isFinite(row.Close) {
			return &MalformedInputError{Row: i, Field: "close", Value: row.Close}
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
