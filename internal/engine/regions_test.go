package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionalSolarFactor(t *testing.T) {
	tests := []struct {
		zip  string
		want float64
	}{
		{zip: "02101", want: 0.85},
		{zip: "10001", want: 0.90},
		{zip: "20001", want: 0.95},
		{zip: "30301", want: 1.00},
		{zip: "40202", want: 1.05},
		{zip: "50309", want: 1.10},
		{zip: "60601", want: 1.15},
		{zip: "73301", want: 1.10},
		{zip: "80202", want: 1.05},
		{zip: "98101", want: 1.00},
		{zip: "", want: DefaultRegionalFactor},
		{zip: "ABCDE", want: DefaultRegionalFactor},
	}

	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			assert.InDelta(t, tt.want, RegionalSolarFactor(tt.zip), 1e-9)
		})
	}
}

func TestSolarRegions(t *testing.T) {
	regions := SolarRegions()
	require.Len(t, regions, 10)
	for i, r := range regions {
		assert.Equal(t, byte('0'+i), r.Digit)
		assert.NotEmpty(t, r.Region)
	}

	regions[0].Factor = 99
	assert.InDelta(t, 0.85, RegionalSolarFactor("0"), 1e-9, "returned slice is a copy")
}
