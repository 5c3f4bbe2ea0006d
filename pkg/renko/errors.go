package renko

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when the brick size is not a positive finite number.
	ErrInvalidConfiguration = errors.New("invalid renko configuration")

	// ErrMalformedInput is returned when a row does not carry a usable open or close price.
	ErrMalformedInput = errors.New("malformed renko input")
)

// MalformedInputError identifies the offending row of a decomposition.
type MalformedInputError struct {
	Row   int
	Field string
	Value float64
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: row %d has a non-numeric %s value (%v)", ErrMalformedInput, e.Row, e.Field, e.Value)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}
