package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/internal/engine"
)

// AirportView is the output shape of one airport.
type AirportView struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RegionView is the output shape of one solar region.
type RegionView struct {
	Digit  string  `json:"zip_first_digit"`
	Region string  `json:"region"`
	Factor float64 `json:"factor"`
}

// NewAirportsCmd creates the airports command, which lists the airport table.
func NewAirportsCmd() *cobra.Command {
	var asGeoJSON bool

	cmd := &cobra.Command{
		Use:   "airports",
		Short: "List the airports accepted by 'estimate airport'",
		Example: `  # List the airports
  ecoquest airports

  # Export the airports as a GeoJSON FeatureCollection
  ecoquest airports --geojson > airports.geojson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asGeoJSON {
				return renderAirportsGeoJSON(cmd.OutOrStdout())
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			list := engine.Airports()
			views := make([]AirportView, len(list))
			for i, a := range list {
				views[i] = AirportView{Code: a.Code, Name: a.Name, Latitude: a.Latitude(), Longitude: a.Longitude()}
			}
			return renderList(cmd.OutOrStdout(), format, views, func(tw io.Writer) {
				fmt.Fprintln(tw, "CODE\tNAME\tLATITUDE\tLONGITUDE")
				fmt.Fprintln(tw, "----\t----\t--------\t---------")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\n", v.Code, v.Name, v.Latitude, v.Longitude)
				}
				b := engine.AirportBounds()
				fmt.Fprintf(tw, "\nExtent: latitude %.4f to %.4f, longitude %.4f to %.4f\n",
					b.Min(1), b.Max(1), b.Min(0), b.Max(0))
			})
		},
	}

	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "write a GeoJSON FeatureCollection instead of --output")
	return cmd
}

// renderAirportsGeoJSON writes the airport table as one GeoJSON FeatureCollection
// of points, with the table's bounding box.
func renderAirportsGeoJSON(w io.Writer) error {
	list := engine.Airports()
	fc := &geojson.FeatureCollection{
		BBox:     engine.AirportBounds(),
		Features: make([]*geojson.Feature, len(list)),
	}
	for i, a := range list {
		fc.Features[i] = &geojson.Feature{
			ID:       a.Code,
			Geometry: a.Location,
			Properties: map[string]any{
				"code": a.Code,
				"name": a.Name,
			},
		}
	}
	return renderJSON(w, fc)
}

// NewRegionsCmd creates the regions command, which lists the solar factor of each ZIP prefix.
func NewRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regional solar factors by ZIP code first digit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			regions := engine.SolarRegions()
			views := make([]RegionView, len(regions))
			for i, r := range regions {
				views[i] = RegionView{Digit: string(r.Digit), Region: r.Region, Factor: r.Factor}
			}
			return renderList(cmd.OutOrStdout(), format, views, func(tw io.Writer) {
				fmt.Fprintln(tw, "ZIP\tREGION\tFACTOR")
				fmt.Fprintln(tw, "---\t------\t------")
				for _, v := range views {
					fmt.Fprintf(tw, "%sxxxx\t%s\t%.2f\n", v.Digit, v.Region, v.Factor)
				}
			})
		},
	}
}

// renderList writes items as JSON, NDJSON or the table drawn by table.
func renderList[T any](w io.Writer, format string, items []T, table func(io.Writer)) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, items)
	case config.FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return fmt.Errorf("encoding item: %w", err)
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}
