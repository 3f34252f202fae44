package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/logging"
	"github.com/rshade/ecoquest/internal/session"
	"github.com/rshade/ecoquest/internal/tui"
)

// ErrNotTerminal is returned by the tour command when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("the tour needs an interactive terminal; use 'ecoquest estimate' instead")

// NewTourCmd creates the tour command, which runs the interactive five-station game.
func NewTourCmd() *cobra.Command {
	var noEquivalencies bool

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Play the interactive EcoQuest tour",
		Long: `Visit the House, Garage, Coffee Shop, Grocery Store and Airport, answer a few
questions at each and earn a badge per location. The progress panel tracks your
total annual emissions and how much you could save.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			show := config.GetTourConfig().ShowEquivalencies
			if cmd.Flags().Changed("no-equivalencies") {
				show = !noEquivalencies
			}

			m, err := tui.RunTour(ctx, tui.TourOptions{
				Estimator:         engine.New(engine.WithLogger(*log)),
				Tour:              session.NewTour(),
				ShowEquivalencies: show,
			})
			if err != nil {
				return err
			}

			p := m.Tour().Progress()
			log.Info().Ctx(ctx).
				Int("visited", p.Visited).
				Int64("total_emissions", p.TotalEmissions).
				Int64("total_savings", p.TotalSavings).
				Bool("complete", p.Complete).
				Msg("tour finished")

			if p.Visited > 0 {
				cmd.Printf("Visited %d of %d locations: %s kg CO2e per year, %s kg CO2e potential savings\n",
					p.Visited, p.Total,
					engine.FormatForDisplay(p.TotalEmissions), engine.FormatForDisplay(p.TotalSavings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noEquivalencies, "no-equivalencies", false, "hide driving and smartphone equivalencies")
	return cmd
}
