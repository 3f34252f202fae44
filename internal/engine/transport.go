package engine

import (
	"fmt"
	"math"
)

// vehicleScenarios holds annual emissions for the same mileage in three vehicle types.
type vehicleScenarios struct {
	MilesPerYear float64
	ICE          float64
	Hybrid       float64
	EV           float64
}

// HybridSavings is the reduction from switching the ICE vehicle to a hybrid.
func (v vehicleScenarios) HybridSavings() float64 { return v.ICE - v.Hybrid }

// EVSavings is the reduction from switching the ICE vehicle to an EV.
func (v vehicleScenarios) EVSavings() float64 { return v.ICE - v.EV }

func calculateVehicles(in GarageInput) vehicleScenarios {
	miles := in.MilesPerWeek * WeeksPerYear
	return vehicleScenarios{
		MilesPerYear: miles,
		ICE:          miles * ICEFactorPerMile,
		Hybrid:       miles * HybridFactorPerMile,
		EV:           miles * EVFactorPerMile,
	}
}

// estimateGarage reports the ICE baseline and the better of the hybrid and EV switches.
// Both switches are always computed and compared.
func estimateGarage(in GarageInput) calculation {
	v := calculateVehicles(in)
	return calculation{
		emissions: v.ICE,
		savings:   math.Max(v.HybridSavings(), v.EVSavings()),
		tips:      copyTips(garageTips),
	}
}

// flightPlan is a resolved airport pair.
type flightPlan struct {
	Origin      AirportRecord
	Destination AirportRecord
	OneWayMiles float64
}

// RoundTripMiles is twice the one-way great-circle distance.
func (f flightPlan) RoundTripMiles() float64 {
	return f.OneWayMiles * RoundTripMultiplier
}

func resolveFlight(in AirportInput) (flightPlan, error) {
	origin, err := ResolveAirport(in.Origin)
	if err != nil {
		return flightPlan{}, fmt.Errorf("origin: %w", err)
	}
	dest, err := ResolveAirport(in.Destination)
	if err != nil {
		return flightPlan{}, fmt.Errorf("destination: %w", err)
	}
	return flightPlan{
		Origin:      origin,
		Destination: dest,
		OneWayMiles: Distance(origin, dest),
	}, nil
}

// estimateAirport computes round-trip flight emissions at FlightFactorPerMile
// per passenger-mile. Savings assume offsets for OffsetSavingRate of the total.
func estimateAirport(in AirportInput) (calculation, error) {
	plan, err := resolveFlight(in)
	if err != nil {
		return calculation{}, err
	}

	tripEmissions := plan.RoundTripMiles() * FlightFactorPerMile
	annual := tripEmissions * in.FlightsPerYear

	return calculation{
		emissions: annual,
		savings:   annual * OffsetSavingRate,
		tips:      copyTips(airportTips),
	}, nil
}
