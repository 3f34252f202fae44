package engine

// SolarRegion is the regional solar production factor for one ZIP first digit.
type SolarRegion struct {
	Digit  byte
	Region string
	Factor float64
}

// solarRegions approximates regional insolation relative to the national baseline,
// indexed by the first digit of the ZIP code.
//
//nolint:gochecknoglobals // Read-only reference table.
var solarRegions = [10]SolarRegion{
	{Digit: '0', Region: "Northeast", Factor: 0.85},
	{Digit: '1', Region: "Northeast", Factor: 0.90},
	{Digit: '2', Region: "Southeast", Factor: 0.95},
	{Digit: '3', Region: "Southeast", Factor: 1.00},
	{Digit: '4', Region: "Southeast", Factor: 1.05},
	{Digit: '5', Region: "Southwest", Factor: 1.10},
	{Digit: '6', Region: "Southwest", Factor: 1.15},
	{Digit: '7', Region: "Southwest", Factor: 1.10},
	{Digit: '8', Region: "Northwest", Factor: 1.05},
	{Digit: '9', Region: "Northwest", Factor: 1.00},
}

// RegionalSolarFactor returns the solar multiplier for a ZIP code.
// Empty codes and codes not starting with a digit get DefaultRegionalFactor.
func RegionalSolarFactor(zipCode string) float64 {
	if zipCode == "" {
		return DefaultRegionalFactor
	}
	d := zipCode[0]
	if d < '0' || d > '9' {
		return DefaultRegionalFactor
	}
	return solarRegions[d-'0'].Factor
}

// SolarRegions returns the full table ordered by digit.
func SolarRegions() []SolarRegion {
	out := make([]SolarRegion, len(solarRegions))
	copy(out, solarRegions[:])
	return out
}
