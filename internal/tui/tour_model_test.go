package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/session"
	"github.com/rshade/ecoquest/internal/survey"
)

func newTestTour(t *testing.T) *TourModel {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC) }
	return NewTourModel(context.Background(), TourOptions{
		Estimator:         engine.New(engine.WithClock(clock)),
		Tour:              session.NewTour(session.WithClock(clock)),
		ShowEquivalencies: true,
	})
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(m *TourModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// fill sets the open form's inputs in field order.
func fill(t *testing.T, m *TourModel, values ...string) {
	t.Helper()
	require.Len(t, m.inputs, len(values))
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

func TestNewTourModel(t *testing.T) {
	m := newTestTour(t)

	assert.Equal(t, StepMap, m.Step())
	rows := m.table.Rows()
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, "Not visited", r[1])
	}
	assert.Equal(t, "🏠 House", rows[0][0])
	assert.Nil(t, m.Init())
}

func TestTourModel_HouseVisit(t *testing.T) {
	m := newTestTour(t)

	send(m, key(tea.KeyEnter))
	require.Equal(t, StepInput, m.Step())
	assert.Equal(t, engine.CategoryHouse, m.station.Category)
	fill(t, m, "30301", "2000")

	view := m.View()
	assert.Contains(t, view, "ZIP Code")
	assert.Contains(t, view, "Averages")

	// Enter on the first field moves focus; on the last it submits.
	send(m, key(tea.KeyEnter))
	assert.Equal(t, 1, m.focus)
	send(m, key(tea.KeyEnter))
	require.Equal(t, StepTips, m.Step())
	require.NotNil(t, m.estimate)
	assert.Equal(t, int64(7244), m.estimate.Emissions)
	assert.Equal(t, int64(2919), m.estimate.SavingsValue())
	assert.True(t, m.newBadge)

	view = m.View()
	assert.Contains(t, view, "Your Carbon Impact")
	assert.Contains(t, view, "Based on your inputs for House")
	assert.Contains(t, view, "Tips for a More Sustainable House")
	assert.Contains(t, view, "7,244")

	send(m, key(tea.KeyEnter))
	require.Equal(t, StepCongratulations, m.Step())
	view = m.View()
	assert.Contains(t, view, "Congratulations!")
	assert.Contains(t, view, "Solar Champion")

	send(m, key(tea.KeyEnter))
	require.Equal(t, StepMap, m.Step())
	assert.Equal(t, "✓ Visited", m.table.Rows()[0][1])
	assert.Equal(t, "7,244 kg", m.table.Rows()[0][2])

	p := m.Tour().Progress()
	assert.Equal(t, 1, p.Visited)
	assert.Contains(t, m.View(), "1 of 5 locations completed")
}

func TestTourModel_RevisitPrefills(t *testing.T) {
	m := newTestTour(t)
	send(m, key(tea.KeyDown), key(tea.KeyEnter))
	require.Equal(t, engine.CategoryGarage, m.station.Category)
	fill(t, m, "150")
	send(m, key(tea.KeyEnter), key(tea.KeyEsc))
	require.Equal(t, StepMap, m.Step())

	send(m, key(tea.KeyEnter))
	require.Equal(t, StepInput, m.Step())
	assert.Equal(t, "150", m.inputs[0].Value())

	fill(t, m, "75")
	send(m, key(tea.KeyEnter))
	require.Equal(t, StepTips, m.Step())
	assert.False(t, m.newBadge)
	assert.Equal(t, 1, m.Tour().Progress().Visited)
}

func TestTourModel_InvalidAnswersStayOnForm(t *testing.T) {
	m := newTestTour(t)
	send(m, key(tea.KeyEnter))
	fill(t, m, "abc", "100")
	m.focus = 1

	send(m, key(tea.KeyEnter))
	require.Equal(t, StepInput, m.Step())
	assert.Equal(t, survey.MsgZipCode, m.fieldErrors[survey.FieldZipCode])
	assert.Equal(t, survey.MsgSquareFootage, m.fieldErrors[survey.FieldSquareFootage])
	assert.Contains(t, m.View(), survey.MsgZipCode)
	assert.Equal(t, 0, m.Tour().Progress().Visited)
}

func TestTourModel_UnknownAirport(t *testing.T) {
	m := newTestTour(t)
	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	require.Equal(t, engine.CategoryAirport, m.station.Category)
	fill(t, m, "1", "ZZZ", "LAX")
	m.focus = 2

	send(m, key(tea.KeyEnter))
	assert.Equal(t, StepInput, m.Step())
	assert.Contains(t, m.formErr, "ZZZ")
	assert.Contains(t, m.View(), "JFK")
}

func TestTourModel_FocusWraps(t *testing.T) {
	m := newTestTour(t)
	send(m, key(tea.KeyEnter))
	send(m, key(tea.KeyShiftTab))
	assert.Equal(t, 1, m.focus)
	send(m, key(tea.KeyTab))
	assert.Equal(t, 0, m.focus)
}

func TestTourModel_FullQuestAndReset(t *testing.T) {
	m := newTestTour(t)
	answers := [][]string{
		{"30301", "2000"},
		{"150"},
		{"3"},
		{"3"},
		{"1", "jfk", "lax"},
	}

	for i, values := range answers {
		m.table.SetCursor(i)
		send(m, key(tea.KeyEnter))
		fill(t, m, values...)
		m.focus = len(values) - 1
		send(m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))
		require.Equal(t, StepMap, m.Step())
	}

	p := m.Tour().Progress()
	require.True(t, p.Complete)
	assert.Len(t, p.Achievements, 5)

	view := m.View()
	assert.Contains(t, view, "Quest Complete!")
	assert.Contains(t, view, "Total (Annual)")
	assert.Contains(t, view, "🏆 Achievements Earned")

	send(m, runes("r"))
	assert.Equal(t, 0, m.Tour().Progress().Visited)
	assert.Equal(t, "Not visited", m.table.Rows()[4][1])
	assert.NotContains(t, m.View(), "Quest Complete!")
}

func TestTourModel_Quit(t *testing.T) {
	m := newTestTour(t)
	cmd := send(m, runes("q"))
	assert.Equal(t, StepQuitting, m.Step())
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m = newTestTour(t)
	send(m, key(tea.KeyEnter))
	cmd = send(m, key(tea.KeyCtrlC))
	assert.Equal(t, StepQuitting, m.Step())
	assert.NotNil(t, cmd)
}

func TestTourModel_WindowSize(t *testing.T) {
	m := newTestTour(t)
	send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestRenderProgressPanel(t *testing.T) {
	tour := session.NewTour()
	p := tour.Progress()

	out := RenderProgressPanel(p, nil)
	assert.Contains(t, out, "🌱 Progress Tracker")
	assert.Contains(t, out, "0 of 5 locations completed")
	assert.Contains(t, out, "Not visited")
	assert.Contains(t, out, session.MsgAnnualBasisNote)
	assert.NotContains(t, out, "📊 Summary")

	est, err := engine.Estimate(engine.CoffeeInput{DaysPerWeek: 3})
	require.NoError(t, err)
	_, _, err = tour.Record(est)
	require.NoError(t, err)

	out = RenderProgressPanel(tour.Progress(), nil)
	assert.Contains(t, out, "Save: 15 kg CO2e")
	assert.Contains(t, out, "♻️ Recycling Hero")
	assert.Contains(t, out, "📊 Summary")
	assert.Contains(t, out, session.MsgImpactLow)
	assert.Contains(t, out, session.MsgPotentialPart)
}

func TestRenderCompletionBanner(t *testing.T) {
	out := RenderCompletionBanner(session.Progress{TotalEmissions: 12345, TotalSavings: 678})
	assert.Contains(t, out, "Quest Complete!")
	assert.Contains(t, out, "12,345 kg CO2e Total (Annual)")
	assert.Contains(t, out, "678 kg CO2e Potential Savings")
}

func TestRenderGuidelines(t *testing.T) {
	g, ok := survey.Guidelines(engine.CategoryGarage)
	require.True(t, ok)
	out := RenderGuidelines(g)
	assert.Contains(t, out, "Commute")
	assert.Contains(t, out, "One Way commute time")
	assert.Contains(t, out, "~150 miles")
}
