// Package session tracks one player's tour of the five stations: which have been
// visited, the estimate recorded at each, the achievements earned and the running
// totals shown on the progress panel and completion banner.
package session

import "github.com/rshade/ecoquest/internal/engine"

// Station is a stop on the tour.
type Station struct {
	Category engine.Category
	ID       string
	Name     string
	Icon     string
}

// Stations returns the tour stops in visiting order.
func Stations() []Station {
	cats := engine.Categories()
	out := make([]Station, len(cats))
	for i, c := range cats {
		out[i] = Station{Category: c, ID: c.LocationID(), Name: c.LocationName(), Icon: Icon(c)}
	}
	return out
}

// Icon returns the map icon of a category.
func Icon(c engine.Category) string {
	switch c {
	case engine.CategoryHouse:
		return "🏠"
	case engine.CategoryGarage:
		return "🚗"
	case engine.CategoryCoffee:
		return "☕"
	case engine.CategoryGrocery:
		return "🛒"
	case engine.CategoryAirport:
		return "✈️"
	default:
		return "📍"
	}
}
