package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownScale = errors.New("unknown scale")
	ErrOutOfRange   = errors.New("temperature out of range")
)

// RangeError reports a temperature outside its scale's physical limits.
type RangeError struct {
	Temp Temperature
	Min  float64
	Max  float64
}

func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid %s temperature: %g (valid range %g to %g)",
		e.Temp.Scale, e.Temp.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrOutOfRange
}
