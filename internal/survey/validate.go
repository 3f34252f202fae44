package survey

import (
	"fmt"
	"math"
	"strings"

	"github.com/rshade/ecoquest/internal/engine"
)

// Validate applies the form range checks to a typed input. It returns a
// *ValidationError listing every failing field, or nil.
//
// Airport codes are only checked for presence here; unknown codes surface as
// engine.ErrInvalidReferenceKey when the estimate runs.
func Validate(input engine.SurveyInput) error {
	switch in := input.(type) {
	case nil:
		return engine.ErrNilInput
	case engine.HouseInput:
		return validateHouse(in)
	case *engine.HouseInput:
		return Validate(deref(in))
	case engine.GarageInput:
		c := &collector{category: engine.CategoryGarage}
		checkRange(c, FieldMilesPerWeek, in.MilesPerWeek, MaxMilesPerWeek, MsgMilesPerWeek)
		return c.err()
	case *engine.GarageInput:
		return Validate(deref(in))
	case engine.CoffeeInput:
		c := &collector{category: engine.CategoryCoffee}
		checkRange(c, FieldDaysPerWeek, in.DaysPerWeek, MaxDaysPerWeek, MsgDaysPerWeek)
		return c.err()
	case *engine.CoffeeInput:
		return Validate(deref(in))
	case engine.GroceryInput:
		c := &collector{category: engine.CategoryGrocery}
		checkRange(c, FieldNightsPerWeek, in.NightsPerWeek, MaxNightsPerWeek, MsgNightsPerWeek)
		return c.err()
	case *engine.GroceryInput:
		return Validate(deref(in))
	case engine.AirportInput:
		return validateAirport(in)
	case *engine.AirportInput:
		return Validate(deref(in))
	default:
		return fmt.Errorf("%w: %T", engine.ErrUnknownCategory, input)
	}
}

// deref turns a nil pointer into a nil interface so Validate reports ErrNilInput.
func deref[T engine.SurveyInput](p *T) engine.SurveyInput {
	if p == nil {
		return nil
	}
	return *p
}

func validateHouse(in engine.HouseInput) error {
	c := &collector{category: engine.CategoryHouse}
	if !IsZipCode(in.ZipCode) {
		c.add(FieldZipCode, MsgZipCode)
	}
	if in.SquareFootage < MinSquareFootage || in.SquareFootage > MaxSquareFootage {
		c.add(FieldSquareFootage, MsgSquareFootage)
	}
	return c.err()
}

func validateAirport(in engine.AirportInput) error {
	c := &collector{category: engine.CategoryAirport}
	checkRange(c, FieldFlightsPerYear, in.FlightsPerYear, MaxFlightsPerYr, MsgFlightsPerYear)
	if strings.TrimSpace(in.Origin) == "" || strings.TrimSpace(in.Destination) == "" {
		c.add(FieldOrigin, MsgAirports)
	}
	return c.err()
}

// checkRange accepts v in [0, upper].
func checkRange(c *collector, field string, v, upper float64, msg string) {
	if math.IsNaN(v) || v < 0 || v > upper {
		c.add(field, msg)
	}
}

// IsZipCode reports whether s is exactly five ASCII digits.
func IsZipCode(s string) bool {
	if len(s) != ZipCodeLength {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
