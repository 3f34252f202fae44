package session

import (
	"time"

	"github.com/rshade/ecoquest/internal/engine"
)

// Achievement is the badge earned by completing a station.
type Achievement struct {
	ID       string          `json:"id"`
	Category engine.Category `json:"category"`
	Name     string          `json:"name"`
	Emoji    string          `json:"emoji"`
	EarnedAt time.Time       `json:"earned_at"`
}

// AchievementFor returns the unearned badge of a category.
func AchievementFor(c engine.Category) Achievement {
	a := Achievement{ID: string(c) + "-achievement", Category: c}
	switch c {
	case engine.CategoryHouse:
		a.Name, a.Emoji = "Solar Champion", "☀️"
	case engine.CategoryGarage:
		a.Name, a.Emoji = "Electric Driver", "🔋"
	case engine.CategoryCoffee:
		a.Name, a.Emoji = "Recycling Hero", "♻️"
	case engine.CategoryGrocery:
		a.Name, a.Emoji = "Green Eater", "🥦"
	case engine.CategoryAirport:
		a.Name, a.Emoji = "Carbon Conscious Traveler", "💨"
	}
	return a
}
