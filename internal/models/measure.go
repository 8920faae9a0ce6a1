package models

import (
	"math"
	"strconv"
)

// Measure is a numeric column of the loc log. A value that failed to parse
// is kept as NaN rather than rejected.
type Measure float64

// NaN returns the measure used for unparseable input.
func NaN() Measure {
	return Measure(math.NaN())
}

// Valid reports whether the measure holds a finite number.
func (m Measure) Valid() bool {
	return !math.IsNaN(float64(m)) && !math.IsInf(float64(m), 0)
}

// Float returns the raw value.
func (m Measure) Float() float64 {
	return float64(m)
}

// MarshalJSON encodes NaN as null since JSON has no NaN literal.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(m), 'f', -1, 64)), nil
}

// UnmarshalJSON decodes null back to NaN.
func (m *Measure) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = NaN()
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = Measure(v)
	return nil
}
