package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/engine/batch"
	"github.com/rshade/ecoquest/internal/greenops"
	"github.com/rshade/ecoquest/internal/session"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// EstimateView is an estimate with its display strings and equivalencies, the
// shape written by the json and ndjson formats.
type EstimateView struct {
	*engine.EmissionsEstimate

	Display       DisplayFigures              `json:"display"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
	SavingsImpact string                      `json:"savings_impact,omitempty"`
}

// DisplayFigures are the reported figures with thousands separators applied.
type DisplayFigures struct {
	Emissions string `json:"emissions"`
	Savings   string `json:"savings"`
}

// NewEstimateView decorates est for output. Equivalencies are omitted when
// disabled or when the figure is too small to compare.
func NewEstimateView(est *engine.EmissionsEstimate, withEquivalencies bool) EstimateView {
	v := EstimateView{
		EmissionsEstimate: est,
		Display: DisplayFigures{
			Emissions: engine.FormatForDisplay(est.Emissions),
			Savings:   engine.FormatForDisplay(est.SavingsValue()),
		},
	}
	if !withEquivalencies {
		return v
	}
	if eq, err := greenops.Calculate(greenops.CarbonInput{Value: float64(est.Emissions), Unit: est.Unit}); err == nil && !eq.IsEmpty {
		v.Equivalencies = &eq
	}
	v.SavingsImpact = greenops.SavingsText(float64(est.SavingsValue()))
	return v
}

// renderEstimate writes one estimate in the requested format.
func renderEstimate(w io.Writer, format string, est *engine.EmissionsEstimate) error {
	view := NewEstimateView(est, true)
	switch format {
	case config.FormatJSON:
		return renderJSON(w, view)
	case config.FormatNDJSON:
		return json.NewEncoder(w).Encode(view)
	default:
		return renderEstimateTable(w, view)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderEstimateTable writes the human-readable form of one estimate.
func renderEstimateTable(w io.Writer, v EstimateView) error {
	est := v.EmissionsEstimate
	title := fmt.Sprintf("%s %s", session.Icon(est.Category), est.LocationName)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, underline(title))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintf(tw, "Annual emissions:\t%s %s\n", v.Display.Emissions, est.Unit)
	if v.Equivalencies != nil {
		fmt.Fprintf(tw, "\t%s\n", v.Equivalencies.DisplayText)
	}
	fmt.Fprintf(tw, "Potential savings:\t%s %s\n", v.Display.Savings, est.Unit)
	if v.SavingsImpact != "" {
		fmt.Fprintf(tw, "\t%s\n", v.SavingsImpact)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inputs:")
	tw = tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, k := range sortedKeys(est.Inputs) {
		fmt.Fprintf(tw, "  %s\t%v\n", k, est.Inputs[k])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tips:")
	for _, tip := range est.Tips {
		fmt.Fprintf(w, "  • %s\n", tip)
	}
	return nil
}

// renderBatchReport writes a batch report in the requested format.
func renderBatchReport(w io.Writer, format string, report *batch.Report) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, newBatchView(report))
	case config.FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, res := range report.Results {
			if err := enc.Encode(newBatchResultView(res)); err != nil {
				return fmt.Errorf("encoding result %d: %w", res.Index+1, err)
			}
		}
		return nil
	default:
		return renderBatchTable(w, report)
	}
}

// batchResultView is a batch.Result with a decorated estimate.
type batchResultView struct {
	Index    int             `json:"index"`
	Name     string          `json:"name,omitempty"`
	Category engine.Category `json:"category,omitempty"`
	Estimate *EstimateView   `json:"estimate,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type batchView struct {
	Results        []batchResultView `json:"results"`
	Succeeded      int               `json:"succeeded"`
	Failed         int               `json:"failed"`
	TotalEmissions int64             `json:"total_emissions"`
	TotalSavings   int64             `json:"total_savings"`
}

func newBatchResultView(res batch.Result) batchResultView {
	v := batchResultView{Index: res.Index + 1, Name: res.Name, Category: res.Category, Error: res.Error}
	if res.Estimate != nil {
		ev := NewEstimateView(res.Estimate, true)
		v.Estimate = &ev
	}
	return v
}

func newBatchView(report *batch.Report) batchView {
	v := batchView{
		Results:        make([]batchResultView, len(report.Results)),
		Succeeded:      report.Succeeded,
		Failed:         report.Failed,
		TotalEmissions: report.TotalEmissions,
		TotalSavings:   report.TotalSavings,
	}
	for i, res := range report.Results {
		v.Results[i] = newBatchResultView(res)
	}
	return v
}

func renderBatchTable(w io.Writer, report *batch.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	fmt.Fprintln(tw, "#\tNAME\tLOCATION\tEMISSIONS\tSAVINGS\tSTATUS")
	fmt.Fprintln(tw, "-\t----\t--------\t---------\t-------\t------")
	for _, res := range report.Results {
		name := res.Name
		if name == "" {
			name = "-"
		}
		if !res.OK() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t-\t-\tERROR: %s\n", res.Index+1, name, orDash(string(res.Category)), res.Error)
			continue
		}
		est := res.Estimate
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\t%s\tok\n",
			res.Index+1, name, session.Icon(est.Category), est.LocationName,
			engine.FormatForDisplay(est.Emissions), engine.FormatForDisplay(est.SavingsValue()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Succeeded: %d  Failed: %d\n", report.Succeeded, report.Failed)
	fmt.Fprintf(w, "Total emissions: %s %s %s\n",
		engine.FormatForDisplay(report.TotalEmissions), engine.UnitKgCO2e, engine.TimeframePerYear)
	fmt.Fprintf(w, "Total savings:   %s %s %s\n",
		engine.FormatForDisplay(report.TotalSavings), engine.UnitKgCO2e, engine.TimeframePerYear)
	if report.Succeeded > 0 {
		avg := float64(report.TotalEmissions) / float64(report.Succeeded)
		fmt.Fprintf(w, "Average per scenario: %s %s %s\n",
			engine.FormatKg(avg), engine.UnitKgCO2e, engine.TimeframePerYear)
	}
	if pct := session.ReductionPercent(report.TotalEmissions, report.TotalSavings); pct > 0 {
		fmt.Fprintf(w, "Potential reduction: %s%%\n", greenops.FormatFloat(pct, 1))
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func underline(s string) string {
	return strings.Repeat("=", utf8.RuneCountInString(s))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
