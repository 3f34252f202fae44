package engine

import (
	"fmt"
	"math"
	"strconv"
)

// Fixed tips per category. The house list gains a final, computed tip.
//
//nolint:gochecknoglobals // Read-only tip lists; copied before use.
var (
	houseTips = []string{
		"Get a quote for a right-sized solar system",
		"Improve insulation and air sealing to reduce energy consumption",
		"Consider energy-efficient appliances and LED lighting",
		"Use a programmable thermostat to optimize heating/cooling",
	}

	garageTips = []string{
		"Consider public transit, carpooling, or remote work days",
		"Walk or bike short trips when feasible",
		"Switch to an electric or hybrid vehicle for significant emissions reduction",
	}

	coffeeTips = []string{
		"Bring a reusable cup; many shops offer a discount",
		"Consider making coffee at home for additional savings",
		"Support cafes that use compostable or reusable materials",
	}

	groceryTips = []string{
		"Try a meatless Monday",
		"Batch-cook plant-forward meals to reduce friction",
		"Explore local farmers markets for seasonal produce",
		"Consider meal planning to reduce food waste",
	}

	airportTips = []string{
		"Bundle trips and choose nonstop flights when possible",
		"Consider rail for regional travel where available",
		"Purchase carbon offsets for unavoidable flights",
		"Combine multiple destinations into single trips",
		"Choose airlines with newer, more fuel-efficient aircraft",
	}
)

// copyTips returns a fresh slice so estimates never share backing arrays.
func copyTips(tips []string, extra ...string) []string {
	out := make([]string, 0, len(tips)+len(extra))
	out = append(out, tips...)
	return append(out, extra...)
}

// solarTip builds the house category's last tip from the system size and savings.
// The size is shown to one decimal place; trailing zeros are dropped ("5 kW", "6.3 kW").
func solarTip(systemSizeKW float64, savings int64) string {
	size := math.Round(systemSizeKW*10) / 10
	return fmt.Sprintf("A %s kW solar system could reduce your electricity emissions by %d kg CO2/year",
		strconv.FormatFloat(size, 'f', -1, 64), savings)
}
