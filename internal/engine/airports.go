package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
)

// AirportRecord is one entry of the airport reference table.
type AirportRecord struct {
	Code string
	Name string

	// Location holds the coordinates in decimal degrees, XY layout (x = longitude, y = latitude).
	Location *geom.Point
}

// Latitude returns the airport latitude in decimal degrees.
func (a AirportRecord) Latitude() float64 {
	return a.Location.Y()
}

// Longitude returns the airport longitude in decimal degrees.
func (a AirportRecord) Longitude() float64 {
	return a.Location.X()
}

func newAirport(code, name string, lat, lon float64) AirportRecord {
	return AirportRecord{
		Code:     code,
		Name:     name,
		Location: geom.NewPointFlat(geom.XY, []float64{lon, lat}),
	}
}

// airports lists the busiest US airports by passenger traffic, keyed by IATA code.
//
//nolint:gochecknoglobals // Read-only reference table.
var airports = map[string]AirportRecord{
	"ATL": newAirport("ATL", "Atlanta (ATL)", 33.6407, -84.4277),
	"AUS": newAirport("AUS", "Austin (AUS)", 30.1975, -97.6664),
	"BNA": newAirport("BNA", "Nashville (BNA)", 36.1263, -86.6774),
	"BOS": newAirport("BOS", "Boston (BOS)", 42.3656, -71.0096),
	"BWI": newAirport("BWI", "Baltimore (BWI)", 39.1754, -76.6682),
	"CLT": newAirport("CLT", "Charlotte (CLT)", 35.2144, -80.9473),
	"CVG": newAirport("CVG", "Cincinnati (CVG)", 39.0489, -84.6678),
	"DCA": newAirport("DCA", "Washington Reagan (DCA)", 38.8512, -77.0402),
	"DEN": newAirport("DEN", "Denver (DEN)", 39.8561, -104.6737),
	"DFW": newAirport("DFW", "Dallas (DFW)", 32.8968, -97.0380),
	"DTW": newAirport("DTW", "Detroit (DTW)", 42.2162, -83.3554),
	"EWR": newAirport("EWR", "Newark (EWR)", 40.6895, -74.1745),
	"FLL": newAirport("FLL", "Fort Lauderdale (FLL)", 26.0742, -80.1506),
	"IAD": newAirport("IAD", "Washington Dulles (IAD)", 38.9531, -77.4565),
	"IAH": newAirport("IAH", "Houston (IAH)", 29.9902, -95.3368),
	"JFK": newAirport("JFK", "New York (JFK)", 40.6413, -73.7781),
	"LAS": newAirport("LAS", "Las Vegas (LAS)", 36.0840, -115.1537),
	"LAX": newAirport("LAX", "Los Angeles (LAX)", 33.9416, -118.4085),
	"LGA": newAirport("LGA", "New York LaGuardia (LGA)", 40.7769, -73.8740),
	"MCI": newAirport("MCI", "Kansas City (MCI)", 39.2976, -94.7139),
	"MCO": newAirport("MCO", "Orlando (MCO)", 28.4312, -81.3081),
	"MIA": newAirport("MIA", "Miami (MIA)", 25.7932, -80.2906),
	"MSP": newAirport("MSP", "Minneapolis (MSP)", 44.8848, -93.2223),
	"ORD": newAirport("ORD", "Chicago (ORD)", 41.9786, -87.9048),
	"PDX": newAirport("PDX", "Portland (PDX)", 45.5898, -122.5951),
	"PHX": newAirport("PHX", "Phoenix (PHX)", 33.4484, -112.0740),
	"PIT": newAirport("PIT", "Pittsburgh (PIT)", 40.4915, -80.2329),
	"RDU": newAirport("RDU", "Raleigh-Durham (RDU)", 35.8801, -78.7880),
	"SEA": newAirport("SEA", "Seattle (SEA)", 47.4502, -122.3088),
	"SFO": newAirport("SFO", "San Francisco (SFO)", 37.6213, -122.3790),
	"SLC": newAirport("SLC", "Salt Lake City (SLC)", 40.7899, -111.9791),
}

// LookupAirport returns the airport for an IATA code. Matching ignores case and
// surrounding whitespace.
func LookupAirport(code string) (AirportRecord, bool) {
	a, ok := airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// ResolveAirport is LookupAirport with an ErrInvalidReferenceKey error for unknown codes.
func ResolveAirport(code string) (AirportRecord, error) {
	a, ok := LookupAirport(code)
	if !ok {
		return AirportRecord{}, fmt.Errorf("%w: %q", ErrInvalidReferenceKey, code)
	}
	return a, nil
}

// Airports returns every airport ordered by code.
func Airports() []AirportRecord {
	out := make([]AirportRecord, 0, len(airports))
	for _, a := range airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AirportCodes returns every airport code in alphabetical order.
func AirportCodes() []string {
	list := Airports()
	codes := make([]string, len(list))
	for i, a := range list {
		codes[i] = a.Code
	}
	return codes
}

// AirportBounds returns the bounding box of the airport table in XY layout
// (dimension 0 is longitude, dimension 1 is latitude).
func AirportBounds() *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	for _, a := range airports {
		b.Extend(a.Location)
	}
	return b
}
