package survey

import "github.com/rshade/ecoquest/internal/engine"

// Guideline is one row of a reference table.
type Guideline struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GuidelineTable helps players estimate an answer.
type GuidelineTable struct {
	Title  string      `json:"title"`
	Header [2]string   `json:"header"`
	Rows   []Guideline `json:"rows"`
}

// Guidelines returns the reference table shown with a category's form.
// Only house and garage have one.
func Guidelines(c engine.Category) (GuidelineTable, bool) {
	switch c {
	case engine.CategoryHouse:
		return GuidelineTable{
			Title:  "Averages",
			Header: [2]string{"Home type", "Size"},
			Rows: []Guideline{
				{Label: "Studio apartment", Value: "~457 sq ft"},
				{Label: "1 bedroom apartment", Value: "~735 sq ft"},
				{Label: "2 bedroom apartment", Value: "~1097 sq ft"},
				{Label: "3 bedroom apartment", Value: "~1336 sq ft"},
				{Label: "Single-family home", Value: "~2200 sq ft"},
				{Label: "Large single family home", Value: "~4000 sq ft"},
			},
		}, true
	case engine.CategoryGarage:
		return GuidelineTable{
			Title:  "Commute",
			Header: [2]string{"One Way commute time", "Weekly miles"},
			Rows: []Guideline{
				{Label: "15 minutes", Value: "~75 miles"},
				{Label: "30 minutes", Value: "~150 miles"},
				{Label: "1 hour", Value: "~300 miles"},
				{Label: "2 hours", Value: "~600 miles"},
			},
		}, true
	default:
		return GuidelineTable{}, false
	}
}
