package engine

import "math"

const degreesToRadians = math.Pi / 180

// HaversineMiles returns the great-circle distance in miles between two points
// given in decimal degrees, on a sphere of radius EarthRadiusMiles.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * degreesToRadians
	dLon := (lon2 - lon1) * degreesToRadians

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat +
		math.Cos(lat1*degreesToRadians)*math.Cos(lat2*degreesToRadians)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// Distance returns the one-way great-circle distance in miles between two airports.
func Distance(from, to AirportRecord) float64 {
	return HaversineMiles(from.Latitude(), from.Longitude(), to.Latitude(), to.Longitude())
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// roundUp rounds a reported figure up to the next whole kilogram. It is the only
// rounding applied to Emissions and Savings.
func roundUp(v float64) int64 {
	return int64(math.Ceil(v))
}
