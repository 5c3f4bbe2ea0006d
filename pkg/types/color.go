package types

import (
	"fmt"
	"strings"
)

type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
)

// ColorOf returns green when the close is at or above the open, red otherwise.
func ColorOf(open, close float64) Color {
	if close >= open {
		return ColorGreen
	}

	return ColorRed
}

func (c Color) String() string {
	return string(c)
}

// Sign returns +1 for green and -1 for red.
func (c Color) Sign() float64 {
	if c == ColorRed {
		return -1.0
	}

	return 1.0
}

// ParseColor parses the color column of the exported renko series, e.g. "G", "R", "green".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "green", "up":
		return ColorGreen, nil
	case "r", "red", "down":
		return ColorRed, nil
	case "":
		return "", nil
	}

	return "", fmt.Errorf("%q is not a valid brick color", s)
}
