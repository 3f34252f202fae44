package greenops

import (
	"fmt"
	"math"
)

//nolint:gochecknoglobals // Fixed presentation order.
var allTypes = []EquivalencyType{
	EquivalencyMilesDriven,
	EquivalencySmartphonesCharged,
	EquivalencyTreeSeedlings,
	EquivalencyHomeDays,
}

// Calculate normalizes input to kilograms and computes every equivalency.
//
// Values below MinEquivalencyThresholdKg return an empty output (IsEmpty) with
// InputKg set and no error. Normalization failures return the normalizer's error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(allTypes))
	for _, t := range allTypes {
		v := kg / t.factor()
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           t,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          t.Label(),
		})
	}

	miles := results[EquivalencyMilesDriven].FormattedValue
	phones := results[EquivalencySmartphonesCharged].FormattedValue

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// CalculateKg is Calculate for a kilogram figure.
func CalculateKg(kg float64) (EquivalencyOutput, error) {
	return Calculate(CarbonInput{Value: kg, Unit: "kg"})
}

// SavingsText describes a reduction as tree seedlings grown for ten years.
// It returns "" when the figure is invalid or worth less than one seedling.
func SavingsText(kg float64) string {
	out, err := CalculateKg(kg)
	if err != nil || out.IsEmpty {
		return ""
	}
	trees, _ := out.Result(EquivalencyTreeSeedlings)
	if math.Round(trees.Value) < 1 {
		return ""
	}
	return fmt.Sprintf("Like growing ~%s tree seedlings for 10 years", trees.FormattedValue)
}

// formatEquivalencyValue uses FormatLarge for millions and up, otherwise a
// rounded, comma-separated integer.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
