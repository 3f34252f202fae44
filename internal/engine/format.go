package engine

import (
	"math"
	"strconv"

	"github.com/rshade/ecoquest/internal/greenops"
)

// FormatForDisplay renders a reported figure. Values of 1,000 and above get
// English thousands separators ("7,244"); smaller values print plainly ("468").
// The stored integer is never changed.
func FormatForDisplay(value int64) string {
	if value >= ThousandsSeparatorThreshold {
		return greenops.FormatNumber(value)
	}
	return strconv.FormatInt(value, 10)
}

// FormatKg rounds a raw kilogram figure up and renders it with FormatForDisplay.
func FormatKg(value float64) string {
	return FormatForDisplay(int64(math.Ceil(value)))
}
