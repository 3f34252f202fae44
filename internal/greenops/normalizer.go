package greenops

import (
	"math"
	"strings"
)

// isKilograms reports whether unit names kilograms of CO2e. Matching is
// case-insensitive and ignores spaces, so "kg CO2e" and "kgCO2e" are the same unit.
func isKilograms(unit string) bool {
	switch strings.ToLower(strings.ReplaceAll(unit, " ", "")) {
	case "kg", "kgco2e":
		return true
	default:
		return false
	}
}

// NormalizeToKg validates a carbon value reported in kilograms.
//
// It returns ErrCalculationOverflow for Inf or NaN values, ErrNegativeValue for
// negative values and ErrInvalidUnit for any unit other than kilograms.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	if !isKilograms(unit) {
		return 0, ErrInvalidUnit
	}
	return value, nil
}
