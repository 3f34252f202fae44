// Package engine estimates annual carbon emissions for the five quest locations.
//
// Each location category has one closed-form formula that turns a small survey
// (square footage, weekly miles, flights per year, ...) into an annual kg CO2e
// figure, a savings potential and a list of tips. Results are rounded up to the
// next whole kilogram at the output boundary only.
//
// The package holds no mutable state: the airport and solar tables are read-only
// and every call builds a fresh EmissionsEstimate, so concurrent use needs no locking.
package engine

import (
	"fmt"
	"strings"
	"time"
)

// Category identifies which location formula applies.
type Category string

const (
	// CategoryHouse estimates home electricity and natural gas use.
	CategoryHouse Category = "house"
	// CategoryGarage estimates personal vehicle driving.
	CategoryGarage Category = "garage"
	// CategoryCoffee estimates single-use coffee cups.
	CategoryCoffee Category = "coffee"
	// CategoryGrocery estimates red meat dinners.
	CategoryGrocery Category = "grocery"
	// CategoryAirport estimates round-trip flights.
	CategoryAirport Category = "airport"
)

// Categories returns the five categories in quest order.
func Categories() []Category {
	return []Category{
		CategoryHouse,
		CategoryGarage,
		CategoryCoffee,
		CategoryGrocery,
		CategoryAirport,
	}
}

// String returns the category tag.
func (c Category) String() string {
	return string(c)
}

// LocationID returns the location identifier reported in estimates.
func (c Category) LocationID() string {
	switch c {
	case CategoryHouse:
		return "suburban-house"
	case CategoryGarage:
		return "garage"
	case CategoryCoffee:
		return "coffee-shop"
	case CategoryGrocery:
		return "grocery-store"
	case CategoryAirport:
		return "airport"
	default:
		return string(c)
	}
}

// LocationName returns the display name of the location.
func (c Category) LocationName() string {
	switch c {
	case CategoryHouse:
		return "House"
	case CategoryGarage:
		return "Garage"
	case CategoryCoffee:
		return "Coffee Shop"
	case CategoryGrocery:
		return "Grocery Store"
	case CategoryAirport:
		return "Airport"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryHouse, CategoryGarage, CategoryCoffee, CategoryGrocery, CategoryAirport:
		return true
	default:
		return false
	}
}

// ParseCategory resolves a category tag or a location id alias
// ("suburban-house", "coffee-shop", "grocery-store"). Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "house", "suburban-house":
		return CategoryHouse, nil
	case "garage":
		return CategoryGarage, nil
	case "coffee", "coffee-shop":
		return CategoryCoffee, nil
	case "grocery", "grocery-store":
		return CategoryGrocery, nil
	case "airport":
		return CategoryAirport, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// SurveyInput is the answer set for exactly one category.
// It is implemented only by the input types in this package.
type SurveyInput interface {
	// Category returns the category this input belongs to.
	Category() Category
	// Fields echoes the raw answers keyed by form field name.
	Fields() map[string]any

	surveyInput()
}

// HouseInput holds the house survey.
type HouseInput struct {
	ZipCode       string `json:"zipCode" yaml:"zipCode"`
	SquareFootage int    `json:"squareFootage" yaml:"squareFootage"`
}

// GarageInput holds the garage survey.
type GarageInput struct {
	MilesPerWeek float64 `json:"milesPerWeek" yaml:"milesPerWeek"`
}

// CoffeeInput holds the coffee shop survey.
type CoffeeInput struct {
	DaysPerWeek float64 `json:"daysPerWeek" yaml:"daysPerWeek"`
}

// GroceryInput holds the grocery store survey.
type GroceryInput struct {
	NightsPerWeek float64 `json:"nightsPerWeek" yaml:"nightsPerWeek"`
}

// AirportInput holds the airport survey.
type AirportInput struct {
	FlightsPerYear float64 `json:"flightsPerYear" yaml:"flightsPerYear"`
	Origin         string  `json:"origin" yaml:"origin"`
	Destination    string  `json:"destination" yaml:"destination"`
}

func (HouseInput) Category() Category   { return CategoryHouse }
func (GarageInput) Category() Category  { return CategoryGarage }
func (CoffeeInput) Category() Category  { return CategoryCoffee }
func (GroceryInput) Category() Category { return CategoryGrocery }
func (AirportInput) Category() Category { return CategoryAirport }

func (HouseInput) surveyInput()   {}
func (GarageInput) surveyInput()  {}
func (CoffeeInput) surveyInput()  {}
func (GroceryInput) surveyInput() {}
func (AirportInput) surveyInput() {}

// Fields implements SurveyInput.
func (in HouseInput) Fields() map[string]any {
	return map[string]any{"zipCode": in.ZipCode, "squareFootage": in.SquareFootage}
}

// Fields implements SurveyInput.
func (in GarageInput) Fields() map[string]any {
	return map[string]any{"milesPerWeek": in.MilesPerWeek}
}

// Fields implements SurveyInput.
func (in CoffeeInput) Fields() map[string]any {
	return map[string]any{"daysPerWeek": in.DaysPerWeek}
}

// Fields implements SurveyInput.
func (in GroceryInput) Fields() map[string]any {
	return map[string]any{"nightsPerWeek": in.NightsPerWeek}
}

// Fields implements SurveyInput.
func (in AirportInput) Fields() map[string]any {
	return map[string]any{
		"flightsPerYear": in.FlightsPerYear,
		"origin":         in.Origin,
		"destination":    in.Destination,
	}
}

// EmissionsEstimate is the result of one estimator call. It is never mutated after creation.
type EmissionsEstimate struct {
	// ID is a ULID assigned at creation, for audit output only.
	ID string `json:"id"`

	Category     Category `json:"category"`
	LocationID   string   `json:"location_id"`
	LocationName string   `json:"location_name"`

	// Inputs echoes the survey answers.
	Inputs map[string]any `json:"inputs"`

	// Emissions is the annual kg CO2e, rounded up.
	Emissions int64 `json:"emissions"`

	// Savings is the annual kg CO2e the suggested change would avoid, rounded up.
	// Nil only for a category without a savings lever; all current categories set it.
	Savings *int64 `json:"savings,omitempty"`

	Unit      string    `json:"unit"`
	Timeframe string    `json:"timeframe"`
	Tips      []string  `json:"tips"`
	Timestamp time.Time `json:"timestamp"`
}

// SavingsValue returns Savings, or zero when no savings lever exists.
func (e *EmissionsEstimate) SavingsValue() int64 {
	if e == nil || e.Savings == nil {
		return 0
	}
	return *e.Savings
}
