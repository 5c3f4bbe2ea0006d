package csvsource

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var (
	// ErrMissingColumns is returned when the csv header does not carry a required column.
	ErrMissingColumns = errors.New("missing columns")

	// ErrNotEnoughColumns is returned when a csv record is shorter than the header.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrEmptyTimeLabel is returned when the time label cell of a record is empty.
	ErrEmptyTimeLabel = errors.New("empty time label")

	// ErrInvalidTimeFormat is returned when the time label can not be parsed.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when a price cell is not a valid decimal.
	ErrInvalidPriceFormat = errors.New("prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the volume cell is not a valid decimal.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")

	// ErrInvalidColorFormat is returned when the color cell is neither green nor red.
	ErrInvalidColorFormat = errors.New("color must be G or R")
)

// CSVRowDecoder is an extension point for CSVRowReader to support custom file formats.
type CSVRowDecoder func(record []string, columns Columns) (types.PriceRow, error)

// DecoderOf returns the decoder of the given format.
func DecoderOf(format Format) CSVRowDecoder {
	switch format {
	case FormatOrion:
		return OrionCSVRowDecoder
	case FormatCandlestick:
		return CandlestickCSVRowDecoder
	default:
		return RenkoCSVRowDecoder
	}
}

// RenkoCSVRowDecoder decodes a record of the parsed renko export.
func RenkoCSVRowDecoder(record []string, columns Columns) (types.PriceRow, error) {
	var r, empty types.PriceRow
	var err error

	if r.Label, r.Time, err = decodeLabel(columns.Get(record, "time")); err != nil {
		return empty, err
	}

	if end := columns.Get(record, "end_time"); end != "" {
		if r.EndTime, err = types.ParseTime(end); err != nil {
			return empty, ErrInvalidTimeFormat
		}
	}

	if r.Open, err = parsePrice(columns.Get(record, "open")); err != nil {
		return empty, err
	}

	if r.Close, err = parsePrice(columns.Get(record, "close")); err != nil {
		return empty, err
	}

	if r.Volume, err = parseVolume(columns.Get(record, "volume")); err != nil {
		return empty, err
	}

	if r.MovingAverage, err = parseOptional(columns.Get(record, "moving_average")); err != nil {
		return empty, err
	}

	if r.Median, err = parseOptional(columns.Get(record, "median")); err != nil {
		return empty, err
	}

	if r.LinearRegression, err = parseOptional(columns.Get(record, "linear_regression")); err != nil {
		return empty, err
	}

	return r, nil
}

// OrionCSVRowDecoder decodes a record of the renko series exported by the Orion platform.
func OrionCSVRowDecoder(record []string, columns Columns) (types.PriceRow, error) {
	var r, empty types.PriceRow
	var err error

	if r.Label, r.Time, err = decodeLabel(columns.Get(record, "time")); err != nil {
		return empty, err
	}

	if r.EndTime, err = types.ParseTime(columns.Get(record, "end_time")); err != nil {
		return empty, ErrInvalidTimeFormat
	}

	if r.Open, err = parsePrice(columns.Get(record, "open")); err != nil {
		return empty, err
	}

	if r.Close, err = parsePrice(columns.Get(record, "close")); err != nil {
		return empty, err
	}

	if r.Volume, err = parseVolume(columns.Get(record, "volume")); err != nil {
		return empty, err
	}

	if r.ColorHint, err = types.ParseColor(columns.Get(record, "color")); err != nil {
		return empty, ErrInvalidColorFormat
	}

	if r.MovingAverage, err = parseOptional(columns.Get(record, "moving_average")); err != nil {
		return empty, err
	}

	return r, nil
}

// CandlestickCSVRowDecoder decodes a record of the candlestick export, the time label is the
// Date and Time columns joined by a space.
func CandlestickCSVRowDecoder(record []string, columns Columns) (types.PriceRow, error) {
	var r, empty types.PriceRow
	var err error

	date, clock := columns.Get(record, "date"), columns.Get(record, "time")
	if r.Label, r.Time, err = decodeLabel(strings.TrimSpace(date + " " + clock)); err != nil {
		return empty, err
	}

	if r.Open, err = parsePrice(columns.Get(record, "open")); err != nil {
		return empty, err
	}

	if r.High, err = parsePrice(columns.Get(record, "high")); err != nil {
		return empty, err
	}

	if r.Low, err = parsePrice(columns.Get(record, "low")); err != nil {
		return empty, err
	}

	if r.Close, err = parsePrice(columns.Get(record, "close")); err != nil {
		return empty, err
	}

	if r.Volume, err = parseVolume(columns.Get(record, "volume")); err != nil {
		return empty, err
	}

	return r, nil
}

func decodeLabel(s string) (string, types.Time, error) {
	if s == "" {
		return "", types.Time{}, ErrEmptyTimeLabel
	}

	t, err := types.ParseTime(s)
	if err != nil {
		return "", types.Time{}, ErrInvalidTimeFormat
	}

	return s, t, nil
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, ErrInvalidPriceFormat
	}

	return v, nil
}

// parseVolume treats a missing volume as zero, a present one must be a non-negative number.
func parseVolume(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || v < 0 {
		return 0, ErrInvalidVolumeFormat
	}

	return v, nil
}

// parseOptional parses an overlay cell, pandas writes the leading rolling window as an empty
// cell so empty and NaN cells are kept as zero.
func parseOptional(s string) (float64, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, nil
	}

	return parsePrice(s)
}
