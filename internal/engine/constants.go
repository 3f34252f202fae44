package engine

// Result labels shared by every category.
const (
	// UnitKgCO2e is the unit of every Emissions and Savings value.
	UnitKgCO2e = "kg CO2e"

	// TimeframePerYear is the period every estimate covers.
	TimeframePerYear = "per year"

	// WeeksPerYear annualizes weekly survey answers.
	WeeksPerYear = 52
)

// House energy constants (EPA averages for a 2,000 sq ft home).
const (
	BaselineSquareFootage = 2000.0
	BaseElectricityKWh    = 12194.0 // kWh/year at baseline size
	BaseGasCubicFeet      = 39319.0 // ft³/year at baseline size
	GridEmissionsFactor   = 0.417   // kg CO2/kWh, includes T&D losses
	GasEmissionsFactor    = 0.0549  // kg CO2/ft³
	BaseSolarSystemKW     = 5.0     // kW at baseline size
	MinSolarSystemKW      = 2.0
	MaxSolarSystemKW      = 10.0

	// SolarYieldKWhPerKW is the annual yield per installed kW before regional adjustment.
	SolarYieldKWhPerKW    = 1400.0
	DefaultRegionalFactor = 1.0
)

// Vehicle factors in kg CO2e per mile.
const (
	ICEFactorPerMile    = 0.404
	HybridFactorPerMile = 0.200
	EVFactorPerMile     = 0.080
)

// Coffee cup factors.
const (
	CupFactorKg           = 0.10 // single-use cup + lid
	ReusableCupSavingRate = 0.9
)

// Red meat factors.
const (
	BeefServingFactorKg  = 3.0 // ~0.11 kg beef × 27 kg CO2e/kg
	PlantBasedSavingRate = 0.8
)

// Air travel factors.
const (
	EarthRadiusMiles    = 3959.0
	FlightFactorPerMile = 0.18 // kg CO2e per passenger-mile, includes high-altitude effects
	RoundTripMultiplier = 2.0
	OffsetSavingRate    = 0.15
)

// ThousandsSeparatorThreshold is the smallest value FormatForDisplay groups with separators.
const ThousandsSeparatorThreshold = 1000
