package greenops

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each factor is the kg CO2e of one unit of activity:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed by one tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average US home electricity use.
	EPAHomeDayFactor = 18.3
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest figure that gets equivalencies.
	// Smaller values produce meaninglessly small comparisons.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
