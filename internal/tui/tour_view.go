package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/greenops"
	"github.com/rshade/ecoquest/internal/session"
	"github.com/rshade/ecoquest/internal/survey"
)

const percentScale = 100

// View renders the current view.
func (m *TourModel) View() string {
	switch m.step {
	case StepQuitting:
		return ""
	case StepInput:
		return m.renderInputView()
	case StepTips:
		return m.renderTipsView()
	case StepCongratulations:
		return m.renderCongratulationsView()
	case StepMap:
		return m.renderMapView()
	default:
		return ""
	}
}

func (m *TourModel) renderMapView() string {
	p := m.tour.Progress()

	sections := []string{
		TitleStyle.Render("🌍 EcoQuest"),
		SubtleStyle.Render("Visit each location to discover its annual carbon footprint."),
		"",
		m.table.View(),
		"",
	}
	if p.Complete {
		sections = append(sections, RenderCompletionBanner(p), "")
	}
	sections = append(sections,
		RenderProgressPanel(p, m.bar),
		HelpStyle.Render("↑/↓: select • enter: visit • r: 🔄 Reset Game • q: quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *TourModel) renderInputView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s %s", m.station.Icon, m.station.Name)))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		b.WriteString(LabelStyle.Render(f.Label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.fieldErrors[f.Key]; msg != "" {
			b.WriteString(CriticalStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.station.Category == engine.CategoryAirport {
		b.WriteString(SubtleStyle.Render("Airports: " + strings.Join(engine.AirportCodes(), " ")))
		b.WriteString("\n\n")
	}

	if g, ok := survey.Guidelines(m.station.Category); ok {
		b.WriteString(RenderGuidelines(g))
		b.WriteString("\n")
	}

	if m.formErr != "" {
		b.WriteString(CriticalStyle.Render(m.formErr))
		b.WriteString("\n\n")
	}

	b.WriteString(HelpStyle.Render("tab: next field • enter: calculate • esc: back"))
	return b.String()
}

// RenderGuidelines renders a two-column reference table.
func RenderGuidelines(g survey.GuidelineTable) string {
	width := len(g.Header[0])
	for _, r := range g.Rows {
		width = max(width, len(r.Label))
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(g.Title))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s  %s", width, g.Header[0], g.Header[1])))
	b.WriteString("\n")
	for _, r := range g.Rows {
		b.WriteString(fmt.Sprintf("%-*s  %s\n", width, r.Label, r.Value))
	}
	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *TourModel) renderTipsView() string {
	est := m.estimate
	if est == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Your Carbon Impact"))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("Based on your inputs for " + est.LocationName))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Annual emissions:  "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%s %s", engine.FormatForDisplay(est.Emissions), est.Unit)))
	b.WriteString("\n")
	if m.showEquivalencies {
		if eq, err := greenops.Calculate(greenops.CarbonInput{Value: float64(est.Emissions), Unit: est.Unit}); err == nil && !eq.IsEmpty {
			b.WriteString(SubtleStyle.Render(eq.DisplayText))
			b.WriteString("\n")
		}
	}

	b.WriteString(LabelStyle.Render("Potential savings: "))
	b.WriteString(SavingsStyle.Render(fmt.Sprintf("%s %s", engine.FormatForDisplay(est.SavingsValue()), est.Unit)))
	b.WriteString("\n")
	if m.showEquivalencies {
		if text := greenops.SavingsText(float64(est.SavingsValue())); text != "" {
			b.WriteString(SubtleStyle.Render(text))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(HeaderStyle.Render("Tips for a More Sustainable " + est.LocationName))
	b.WriteString("\n")
	for _, tip := range est.Tips {
		b.WriteString("  • " + tip + "\n")
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: continue • esc: back to map"))

	return BoxStyle.Width(m.width - borderPadding).Render(b.String())
}

func (m *TourModel) renderCongratulationsView() string {
	a := m.achievement
	lines := []string{
		TitleStyle.Render("Congratulations!"),
		"",
		a.Emoji,
		fmt.Sprintf("You have earned the %s badge for completing this location!",
			HighlightStyle.Render(a.Name)),
	}
	if !m.newBadge {
		lines = append(lines, SubtleStyle.Render("Your estimate for this location has been updated."))
	}
	lines = append(lines, "", HelpStyle.Render("enter: back to map"))
	return BannerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// RenderProgressPanel renders the progress tracker: visits, achievements and the summary.
func RenderProgressPanel(p session.Progress, bar interface{ ViewAs(float64) string }) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("🌱 Progress Tracker"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d of %d locations completed\n", p.Visited, p.Total))
	if bar != nil {
		b.WriteString(bar.ViewAs(p.PercentVisited() / percentScale))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visits := make(map[engine.Category]*engine.EmissionsEstimate, len(p.Visits))
	for _, v := range p.Visits {
		visits[v.Station.Category] = v.Estimate
	}
	for _, s := range session.Stations() {
		est, ok := visits[s.Category]
		if !ok {
			b.WriteString(fmt.Sprintf("%s %-14s %s\n", s.Icon, s.Name, SubtleStyle.Render("Not visited")))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %-14s %s kg CO2e  %s\n", s.Icon, s.Name,
			ValueStyle.Render(engine.FormatForDisplay(est.Emissions)),
			SavingsStyle.Render("Save: "+engine.FormatForDisplay(est.SavingsValue())+" kg CO2e")))
	}

	if len(p.Achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render("🏆 Achievements Earned"))
		b.WriteString("\n")
		for _, a := range p.Achievements {
			b.WriteString(fmt.Sprintf("%s %s\n", a.Emoji, a.Name))
		}
	}

	if p.Visited > 0 {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render("📊 Summary"))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Total Emissions: "))
		b.WriteString(ValueStyle.Render(engine.FormatForDisplay(p.TotalEmissions) + " kg CO2e"))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Potential Savings: "))
		b.WriteString(SavingsStyle.Render(engine.FormatForDisplay(p.TotalSavings) + " kg CO2e"))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Reduction Potential: "))
		b.WriteString(ValueStyle.Render(greenops.FormatFloat(p.ReductionPercent, 0) + "%"))
		b.WriteString("\n")
		b.WriteString(p.ImpactMessage + "\n")
		b.WriteString(p.PotentialMessage + "\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("💡 " + session.MsgAnnualBasisNote))

	return BoxStyle.Render(b.String())
}

// RenderCompletionBanner renders the quest complete banner.
func RenderCompletionBanner(p session.Progress) string {
	return BannerStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		"🏆",
		TitleStyle.Render(session.MsgQuestComplete),
		session.MsgQuestCongrats,
		"",
		ValueStyle.Render(fmt.Sprintf("🌍 %s kg CO2e Total (Annual)", engine.FormatForDisplay(p.TotalEmissions))),
		SavingsStyle.Render(fmt.Sprintf("💚 %s kg CO2e Potential Savings", engine.FormatForDisplay(p.TotalSavings))),
		LabelStyle.Render(fmt.Sprintf("🏅 %d Achievements", len(p.Achievements))),
	))
}
