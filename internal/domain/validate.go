package domain

// Physical limits per scale. The lower bounds are absolute zero; the
// upper bounds cap input at values the converter is meant for.
const (
	MinCelsius = -273.15
	MaxCelsius = 1000

	MinFahrenheit = -459.67
	MaxFahrenheit = 1832
)

// Limits returns the inclusive [min, max] range accepted for the scale.
func (s Scale) Limits() (min, max float64) {
	if s == Fahrenheit {
		return MinFahrenheit, MaxFahrenheit
	}
	return MinCelsius, MaxCelsius
}

// Validate reports whether the temperature lies within its scale's
// physical range. Boundaries are inclusive.
func (t Temperature) Validate() error {
	min, max := t.Scale.Limits()
	if t.Value < min || t.Value > max {
		return &RangeError{Temp: t, Min: min, Max: max}
	}
	return nil
}
