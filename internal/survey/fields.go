// Package survey turns raw form answers into engine inputs. It owns the range checks
// the engine leaves to its callers, the per-field messages shown to players and the
// guideline tables printed next to the forms.
package survey

import "github.com/rshade/ecoquest/internal/engine"

// Field keys, shared by forms, scenario files and EmissionsEstimate.Inputs.
const (
	FieldZipCode        = "zipCode"
	FieldSquareFootage  = "squareFootage"
	FieldMilesPerWeek   = "milesPerWeek"
	FieldDaysPerWeek    = "daysPerWeek"
	FieldNightsPerWeek  = "nightsPerWeek"
	FieldFlightsPerYear = "flightsPerYear"
	FieldOrigin         = "origin"
	FieldDestination    = "destination"
)

// Accepted ranges, inclusive.
const (
	ZipCodeLength    = 5
	MinSquareFootage = 500
	MaxSquareFootage = 10000
	MaxMilesPerWeek  = 2000
	MaxDaysPerWeek   = 7
	MaxNightsPerWeek = 7
	MaxFlightsPerYr  = 100
)

// Messages shown under invalid fields.
const (
	MsgZipCode        = "Please enter a valid 5-digit ZIP code"
	MsgSquareFootage  = "Square footage must be between 500 and 10,000"
	MsgMilesPerWeek   = "Miles per week must be between 0 and 2,000"
	MsgDaysPerWeek    = "Days per week must be between 0 and 7"
	MsgNightsPerWeek  = "Nights per week must be between 0 and 7"
	MsgFlightsPerYear = "Flights per year must be between 0 and 100"
	MsgAirports       = "Please select both origin and destination airports"
)

// FieldKind selects how a form renders and parses a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInteger
	KindNumber
	KindAirport
)

// Field describes one form input.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        FieldKind
	Min         float64
	Max         float64
	MaxLength   int
}

// FieldsFor returns the form fields of a category in display order,
// or nil for an unknown category.
func FieldsFor(c engine.Category) []Field {
	switch c {
	case engine.CategoryHouse:
		return []Field{
			{Key: FieldZipCode, Label: "ZIP Code", Placeholder: "12345", Kind: KindText, MaxLength: ZipCodeLength},
			{
				Key: FieldSquareFootage, Label: "Home Square Footage", Placeholder: "2000",
				Kind: KindInteger, Min: MinSquareFootage, Max: MaxSquareFootage,
			},
		}
	case engine.CategoryGarage:
		return []Field{
			{
				Key: FieldMilesPerWeek, Label: "Miles Driven Per Week", Placeholder: "150",
				Kind: KindNumber, Max: MaxMilesPerWeek,
			},
		}
	case engine.CategoryCoffee:
		return []Field{
			{
				Key: FieldDaysPerWeek, Label: "Days Per Week Visiting Coffee Shop", Placeholder: "3",
				Kind: KindNumber, Max: MaxDaysPerWeek,
			},
		}
	case engine.CategoryGrocery:
		return []Field{
			{
				Key: FieldNightsPerWeek, Label: "Nights Per Week Eating Red Meat", Placeholder: "3",
				Kind: KindNumber, Max: MaxNightsPerWeek,
			},
		}
	case engine.CategoryAirport:
		return []Field{
			{
				Key: FieldFlightsPerYear, Label: "How many times do you fly per year on average?",
				Placeholder: "4", Kind: KindNumber, Max: MaxFlightsPerYr,
			},
			{Key: FieldOrigin, Label: "Origin Airport", Placeholder: "JFK", Kind: KindAirport, MaxLength: 3},
			{Key: FieldDestination, Label: "Destination Airport", Placeholder: "LAX", Kind: KindAirport, MaxLength: 3},
		}
	default:
		return nil
	}
}
