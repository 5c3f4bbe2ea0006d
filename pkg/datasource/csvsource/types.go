package csvsource

import (
	"fmt"
	"strings"
)

// Format is the layout of a delimited price file.
type Format string

const (
	// FormatRenko is the parsed renko export:
	// Time_Start, Renko_Open, Renko_Close, Volume, Moving_Average, Median
	FormatRenko Format = "renko"

	// FormatOrion is the renko series exported by the Orion platform:
	// StartDateTime, EndDateTime, StartPrice, EndPrice, TotalVolume, Color, MovingAverage
	FormatOrion Format = "orion"

	// FormatCandlestick is the plain candlestick export:
	// Date, Time, Open, High, Low, Close, Volume
	FormatCandlestick Format = "candlestick"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatRenko, FormatOrion, FormatCandlestick:
		return f, nil
	case "":
		return FormatRenko, nil
	}

	return "", fmt.Errorf("unsupported csv format %q", s)
}

func (f Format) String() string {
	return string(f)
}

// field is a logical column of a price row, a field can be stored under several column names
// depending on which script produced the file.
type field struct {
	name     string
	aliases  []string
	required bool
}

var formatFields = map[Format][]field{
	FormatRenko: {
		{name: "time", aliases: []string{"Time_Start"}, required: true},
		{name: "end_time", aliases: []string{"Time_End"}},
		{name: "open", aliases: []string{"Renko_Open"}, required: true},
		{name: "close", aliases: []string{"Renko_Close"}, required: true},
		{name: "volume", aliases: []string{"Volume", "Volume_Total"}},
		{name: "moving_average", aliases: []string{"Moving_Average", "Moving Average", "Indicator_1"}},
		{name: "median", aliases: []string{"Median", "Indicator_2"}},
		{name: "linear_regression", aliases: []string{"Linear Regression", "Linear_Regression"}},
	},
	FormatOrion: {
		{name: "time", aliases: []string{"StartDateTime"}, required: true},
		{name: "end_time", aliases: []string{"EndDateTime"}, required: true},
		{name: "open", aliases: []string{"StartPrice"}, required: true},
		{name: "close", aliases: []string{"EndPrice"}, required: true},
		{name: "volume", aliases: []string{"TotalVolume"}},
		{name: "color", aliases: []string{"Color"}, required: true},
		{name: "moving_average", aliases: []string{"MovingAverage"}, required: true},
	},
	FormatCandlestick: {
		{name: "date", aliases: []string{"Date"}, required: true},
		{name: "time", aliases: []string{"Time"}, required: true},
		{name: "open", aliases: []string{"Open"}, required: true},
		{name: "high", aliases: []string{"High"}, required: true},
		{name: "low", aliases: []string{"Low"}, required: true},
		{name: "close", aliases: []string{"Close"}, required: true},
		{name: "volume", aliases: []string{"Volume"}, required: true},
	},
}
