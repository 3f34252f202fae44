package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTour runs the interactive tour until the player quits. It returns the final
// model so callers can report the session.
func RunTour(ctx context.Context, opts TourOptions) (*TourModel, error) {
	m := NewTourModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return m, fmt.Errorf("running tour: %w", err)
	}
	return m, nil
}
