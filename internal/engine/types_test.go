package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "house", want: CategoryHouse},
		{in: "suburban-house", want: CategoryHouse},
		{in: "Garage", want: CategoryGarage},
		{in: "coffee-shop", want: CategoryCoffee},
		{in: " COFFEE ", want: CategoryCoffee},
		{in: "grocery-store", want: CategoryGrocery},
		{in: "airport", want: CategoryAirport},
		{in: "boat", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Metadata(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 5)

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.LocationName())
		assert.False(t, seen[c.LocationID()], "duplicate location id %s", c.LocationID())
		seen[c.LocationID()] = true

		roundTrip, err := ParseCategory(c.LocationID())
		require.NoError(t, err)
		assert.Equal(t, c, roundTrip)
	}

	assert.False(t, Category("boat").Valid())
	assert.Equal(t, "boat", Category("boat").LocationID())
}

func TestSurveyInput_Fields(t *testing.T) {
	tests := []struct {
		name  string
		input SurveyInput
		want  map[string]any
	}{
		{
			name:  "house",
			input: HouseInput{ZipCode: "30301", SquareFootage: 2000},
			want:  map[string]any{"zipCode": "30301", "squareFootage": 2000},
		},
		{
			name:  "airport",
			input: AirportInput{FlightsPerYear: 2, Origin: "JFK", Destination: "LAX"},
			want:  map[string]any{"flightsPerYear": 2.0, "origin": "JFK", "destination": "LAX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Fields())
		})
	}
}
