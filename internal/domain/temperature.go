package domain

import (
	"fmt"
	"strings"
)

// Scale identifies one of the two supported temperature scales.
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
)

func (s Scale) String() string {
	switch s {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// Symbol returns the display symbol for the scale ("°C" or "°F").
func (s Scale) Symbol() string {
	if s == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Other returns the opposite scale.
func (s Scale) Other() Scale {
	if s == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// ParseScale accepts "c"/"celsius" or "f"/"fahrenheit", case-insensitively.
func ParseScale(in string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return Celsius, fmt.Errorf("%w: %q (expected c|celsius|f|fahrenheit)", ErrUnknownScale, in)
	}
}

// Temperature is a measurement paired with the scale it was taken in.
// The pairing is explicit: nothing in the domain infers a scale.
type Temperature struct {
	Value float64
	Scale Scale
}

// CelsiusToFahrenheit applies the affine map °C → °F.
// Total over all finite inputs; physical validity is Validate's job.
func CelsiusToFahrenheit(v float64) float64 {
	return v*9/5 + 32
}

// FahrenheitToCelsius applies the affine map °F → °C.
func FahrenheitToCelsius(v float64) float64 {
	return (v - 32) * 5 / 9
}

// Convert returns the same measurement expressed in the other scale.
func (t Temperature) Convert() Temperature {
	out := Temperature{Scale: t.Scale.Other()}
	if t.Scale == Celsius {
		out.Value = CelsiusToFahrenheit(t.Value)
	} else {
		out.Value = FahrenheitToCelsius(t.Value)
	}
	return out
}

// String formats the temperature with two decimals and its symbol,
// e.g. "25.00°C". Standard rounding, not truncation.
func (t Temperature) String() string {
	return fmt.Sprintf("%.2f%s", t.Value, t.Scale.Symbol())
}

// Conversion records one completed conversion.
type Conversion struct {
	Input  Temperature
	Output Temperature
}

// String renders the result line shown to the user,
// e.g. "25.00°C = 77.00°F".
func (c Conversion) String() string {
	return fmt.Sprintf("%s = %s", c.Input, c.Output)
}
