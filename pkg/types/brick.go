package types

import (
	"fmt"
	"math"
)

// Brick is one fixed size rectangle of a renko chart. Open is where the brick starts and Close
// is where it ends, so Close < Open for a brick drawn downwards.
type Brick struct {
	// Index is the x slot of the brick, one slot per input row.
	Index int    `json:"index"`
	Label string `json:"label"`

	Open  float64 `json:"open"`
	Close float64 `json:"close"`
	Color Color   `json:"color"`
}

func (b Brick) Low() float64 {
	return math.Min(b.Open, b.Close)
}

func (b Brick) High() float64 {
	return math.Max(b.Open, b.Close)
}

// Height is the signed height of the brick in the movement direction.
func (b Brick) Height() float64 {
	return b.Close - b.Open
}

func (b Brick) Size() float64 {
	return math.Abs(b.Close - b.Open)
}

func (b Brick) String() string {
	return fmt.Sprintf("#%d %s [%g, %g] %s", b.Index, b.Label, b.Low(), b.High(), b.Color)
}

type BrickSlice []Brick

// OfIndex returns the bricks of the given x slot.
func (s BrickSlice) OfIndex(index int) (out BrickSlice) {
	for _, b := range s {
		if b.Index == index {
			out = append(out, b)
		}
	}

	return out
}

// PriceRange returns the lowest and the highest price covered by the bricks.
func (s BrickSlice) PriceRange() (low, high float64) {
	if len(s) == 0 {
		return 0, 0
	}

	low, high = s[0].Low(), s[0].High()
	for _, b := range s[1:] {
		low = math.Min(low, b.Low())
		high = math.Max(high, b.High())
	}

	return low, high
}
