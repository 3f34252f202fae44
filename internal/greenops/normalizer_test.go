package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg_Units(t *testing.T) {
	for _, unit := range []string{"kg CO2e", "kgCO2e", "KG", "kg", " kg co2e "} {
		t.Run(unit, func(t *testing.T) {
			got, err := NormalizeToKg(7244, unit)
			require.NoError(t, err)
			assert.InDelta(t, 7244.0, got, 0)
		})
	}
}

func TestNormalizeToKg_Zero(t *testing.T) {
	got, err := NormalizeToKg(0, "kg CO2e")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestNormalizeToKg_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  error
	}{
		{name: "negative", value: -1, unit: "kg", want: ErrNegativeValue},
		{name: "energy unit", value: 1, unit: "kWh", want: ErrInvalidUnit},
		{name: "tons", value: 1, unit: "t CO2e", want: ErrInvalidUnit},
		{name: "empty unit", value: 1, unit: "", want: ErrInvalidUnit},
		{name: "NaN", value: math.NaN(), unit: "kg", want: ErrCalculationOverflow},
		{name: "Inf", value: math.Inf(1), unit: "kg", want: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeToKg(tt.value, tt.unit)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
