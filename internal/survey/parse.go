package survey

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rshade/ecoquest/internal/engine"
)

// Parse converts raw answers into a validated engine input. Values may be strings
// (form text) or numbers (decoded YAML or JSON). A missing or unparseable value is
// reported with the field's range message, like an out-of-range one.
func Parse(category engine.Category, raw map[string]any) (engine.SurveyInput, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", engine.ErrUnknownCategory, category)
	}

	c := &collector{category: category}
	var input engine.SurveyInput

	switch category {
	case engine.CategoryHouse:
		sqft, ok := intField(raw, FieldSquareFootage)
		if !ok {
			c.add(FieldSquareFootage, MsgSquareFootage)
		}
		input = engine.HouseInput{
			ZipCode:       stringField(raw, FieldZipCode),
			SquareFootage: sqft,
		}
	case engine.CategoryGarage:
		miles := numberField(c, raw, FieldMilesPerWeek, MsgMilesPerWeek)
		input = engine.GarageInput{MilesPerWeek: miles}
	case engine.CategoryCoffee:
		days := numberField(c, raw, FieldDaysPerWeek, MsgDaysPerWeek)
		input = engine.CoffeeInput{DaysPerWeek: days}
	case engine.CategoryGrocery:
		nights := numberField(c, raw, FieldNightsPerWeek, MsgNightsPerWeek)
		input = engine.GroceryInput{NightsPerWeek: nights}
	case engine.CategoryAirport:
		flights := numberField(c, raw, FieldFlightsPerYear, MsgFlightsPerYear)
		input = engine.AirportInput{
			FlightsPerYear: flights,
			Origin:         strings.ToUpper(stringField(raw, FieldOrigin)),
			Destination:    strings.ToUpper(stringField(raw, FieldDestination)),
		}
	}

	if err := Validate(input); err != nil {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		for _, f := range ve.Fields {
			c.add(f.Field, f.Message)
		}
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return input, nil
}

// ParseStrings is Parse for text answers, as collected by interactive forms.
func ParseStrings(category engine.Category, raw map[string]string) (engine.SurveyInput, error) {
	values := make(map[string]any, len(raw))
	for k, v := range raw {
		values[k] = v
	}
	return Parse(category, values)
}

func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func numberField(c *collector, raw map[string]any, key, msg string) float64 {
	f, ok := toFloat(raw[key])
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		c.add(key, msg)
		return 0
	}
	return f
}

// intField accepts whole numbers only.
func intField(raw map[string]any, key string) (int, bool) {
	f, ok := toFloat(raw[key])
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
