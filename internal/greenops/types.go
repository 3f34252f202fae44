// Package greenops turns kg CO2e figures into relatable comparisons such as
// "miles driven" or "tree seedlings grown", using EPA-published factors.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Label is the descriptive phrase shown next to a value.
func (e EquivalencyType) Label() string {
	switch e {
	case EquivalencyMilesDriven:
		return "miles driven"
	case EquivalencySmartphonesCharged:
		return "smartphones charged"
	case EquivalencyTreeSeedlings:
		return "tree seedlings grown for 10 years"
	case EquivalencyHomeDays:
		return "days of home electricity"
	default:
		return ""
	}
}

func (e EquivalencyType) factor() float64 {
	switch e {
	case EquivalencyMilesDriven:
		return EPAMilesDrivenFactor
	case EquivalencySmartphonesCharged:
		return EPASmartphoneChargeFactor
	case EquivalencyTreeSeedlings:
		return EPATreeSeedlingFactor
	case EquivalencyHomeDays:
		return EPAHomeDayFactor
	default:
		return 0
	}
}

// CarbonInput is a carbon figure with its unit.
type CarbonInput struct {
	// Value is the numeric carbon amount.
	Value float64 `json:"value"`

	// Unit must be kilograms, optionally suffixed "CO2e" ("kg CO2e").
	Unit string `json:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains the equivalencies of one carbon figure.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results holds every equivalency type in declaration order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form for CLI and TUI output.
	// Example: "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for table cells.
	// Example: "(≈ 781 mi, 18,248 phones)"
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}

// Result returns the entry of the given type.
func (o EquivalencyOutput) Result(t EquivalencyType) (EquivalencyResult, bool) {
	for _, r := range o.Results {
		if r.Type == t {
			return r, true
		}
	}
	return EquivalencyResult{}, false
}
