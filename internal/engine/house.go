package engine

import "math"

// houseBreakdown carries the unrounded intermediate values of the house formula.
type houseBreakdown struct {
	RegionalFactor        float64
	ElectricityKWh        float64
	ElectricityEmissions  float64
	GasCubicFeet          float64
	GasEmissions          float64
	TotalEmissions        float64
	SystemSizeKW          float64
	AnnualProductionKWh   float64
	SolarSavings          float64
	ResidualElectricityKg float64
	EmissionsWithSolar    float64
}

// calculateHouse computes home energy emissions and the rooftop solar offset.
//
// The calculation:
//  1. Scale the EPA 2,000 sq ft baselines (12,194 kWh, 39,319 ft³) by sqft/2000
//  2. Electricity kg = kWh × 0.417; gas kg = ft³ × 0.0549; emissions = sum
//  3. System size = clamp(5 kW × sqft/2000, 2, 10)
//  4. Production = size × 1,400 kWh × regional factor (ZIP first digit)
//  5. Savings = production × 0.417
//
// Residual electricity emissions are floored at zero before the with-solar total is
// formed, so the offset never removes gas emissions. That total is diagnostic only.
func calculateHouse(in HouseInput) houseBreakdown {
	scale := float64(in.SquareFootage) / BaselineSquareFootage

	var b houseBreakdown
	b.RegionalFactor = RegionalSolarFactor(in.ZipCode)

	b.ElectricityKWh = BaseElectricityKWh * scale
	b.ElectricityEmissions = b.ElectricityKWh * GridEmissionsFactor

	b.GasCubicFeet = BaseGasCubicFeet * scale
	b.GasEmissions = b.GasCubicFeet * GasEmissionsFactor

	b.TotalEmissions = b.ElectricityEmissions + b.GasEmissions

	b.SystemSizeKW = clamp(BaseSolarSystemKW*scale, MinSolarSystemKW, MaxSolarSystemKW)
	b.AnnualProductionKWh = b.SystemSizeKW * SolarYieldKWhPerKW * b.RegionalFactor
	b.SolarSavings = b.AnnualProductionKWh * GridEmissionsFactor

	b.ResidualElectricityKg = math.Max(0, b.ElectricityEmissions-b.SolarSavings)
	b.EmissionsWithSolar = b.ResidualElectricityKg + b.GasEmissions

	return b
}

// estimateHouse turns the breakdown into reported figures and logs the trace.
func (e *Estimator) estimateHouse(in HouseInput) calculation {
	b := calculateHouse(in)
	savings := roundUp(b.SolarSavings)

	e.logger.Debug().
		Str("component", "engine").
		Str("category", string(CategoryHouse)).
		Int("square_footage", in.SquareFootage).
		Str("zip_code", in.ZipCode).
		Float64("regional_factor", b.RegionalFactor).
		Float64("scaled_electricity_kwh", math.Round(b.ElectricityKWh)).
		Float64("electricity_emissions_kg", math.Round(b.ElectricityEmissions)).
		Float64("scaled_gas_ft3", math.Round(b.GasCubicFeet)).
		Float64("gas_emissions_kg", math.Round(b.GasEmissions)).
		Float64("total_emissions_kg", math.Round(b.TotalEmissions)).
		Float64("solar_savings_kg", math.Round(b.SolarSavings)).
		Float64("emissions_with_solar_kg", math.Round(b.EmissionsWithSolar)).
		Msg("house emissions calculation")

	return calculation{
		emissions: b.TotalEmissions,
		savings:   b.SolarSavings,
		tips:      copyTips(houseTips, solarTip(b.SystemSizeKW, savings)),
	}
}
