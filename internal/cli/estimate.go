package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/logging"
	"github.com/rshade/ecoquest/internal/survey"
)

// estimateFlag binds a command line flag to a survey field.
type estimateFlag struct {
	name  string
	field string
	usage string
}

// estimateFlags lists the flags of each estimate subcommand.
//
//nolint:gochecknoglobals // Read-only flag table.
var estimateFlags = map[engine.Category][]estimateFlag{
	engine.CategoryHouse: {
		{name: "zip", field: survey.FieldZipCode, usage: "5-digit ZIP code"},
		{name: "sqft", field: survey.FieldSquareFootage, usage: "home size in square feet (500-10,000)"},
	},
	engine.CategoryGarage: {
		{name: "miles", field: survey.FieldMilesPerWeek, usage: "miles driven per week (0-2,000)"},
	},
	engine.CategoryCoffee: {
		{name: "days", field: survey.FieldDaysPerWeek, usage: "coffee shop visits per week (0-7)"},
	},
	engine.CategoryGrocery: {
		{name: "nights", field: survey.FieldNightsPerWeek, usage: "beef dinners per week (0-7)"},
	},
	engine.CategoryAirport: {
		{name: "flights", field: survey.FieldFlightsPerYear, usage: "round trips per year (0-100)"},
		{name: "origin", field: survey.FieldOrigin, usage: "origin airport code (see 'ecoquest airports')"},
		{name: "destination", field: survey.FieldDestination, usage: "destination airport code"},
	},
}

// newEstimateCmd creates the estimate command group, one subcommand per location.
func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the annual emissions of one location",
	}
	for _, c := range engine.Categories() {
		cmd.AddCommand(NewEstimateCategoryCmd(c))
	}
	return cmd
}

// NewEstimateCategoryCmd creates the estimate subcommand of one category. Flags are
// read as text and go through the same survey parsing as the interactive forms.
func NewEstimateCategoryCmd(c engine.Category) *cobra.Command {
	flags := estimateFlags[c]
	values := make([]string, len(flags))

	cmd := &cobra.Command{
		Use:   string(c),
		Short: fmt.Sprintf("Estimate %s emissions", c.LocationName()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := make(map[string]string, len(flags))
			for i, f := range flags {
				if cmd.Flags().Changed(f.name) {
					raw[f.field] = values[i]
				}
			}
			return runEstimate(cmd, c, raw)
		},
	}

	if id := c.LocationID(); id != string(c) {
		cmd.Aliases = []string{id}
	}
	for i, f := range flags {
		cmd.Flags().StringVar(&values[i], f.name, "", f.usage)
	}
	return cmd
}

func runEstimate(cmd *cobra.Command, c engine.Category, raw map[string]string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	input, err := survey.ParseStrings(c, raw)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Str("category", string(c)).Msg("survey rejected")
		return err
	}

	est, err := engine.New(engine.WithLogger(*log)).EstimateFor(c, input)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("category", string(c)).Msg("estimate failed")
		return err
	}

	log.Debug().Ctx(ctx).
		Str("category", string(c)).
		Str("estimate_id", est.ID).
		Int64("emissions", est.Emissions).
		Int64("savings", est.SavingsValue()).
		Msg("estimate complete")

	return renderEstimate(cmd.OutOrStdout(), format, est)
}
