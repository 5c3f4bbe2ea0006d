package style

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var GreenColor = "#228B22"
var RedColor = "#800000"

var UpEmoji = "🟩"
var DownEmoji = "🟥"

func BrickColor(c types.Color) string {
	if c == types.ColorRed {
		return RedColor
	}
	return GreenColor
}

func BrickEmoji(c types.Color) string {
	if c == types.ColorRed {
		return DownEmoji
	}
	return UpEmoji
}

// BrickTextColors returns the terminal colors of a brick table row.
func BrickTextColors(c types.Color) text.Colors {
	if c == types.ColorRed {
		return text.Colors{text.FgHiRed}
	}
	return text.Colors{text.FgHiGreen}
}

func SignString(v float64) string {
	if v > 0 {
		return "+" + types.FormatPrice(v)
	}
	return types.FormatPrice(v)
}
