package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/logging"
	"github.com/rshade/ecoquest/internal/session"
	"github.com/rshade/ecoquest/internal/survey"
)

// TourStep is the screen the tour is showing.
type TourStep int

const (
	// StepMap lists the stations with the progress panel.
	StepMap TourStep = iota
	// StepInput shows a station's survey form.
	StepInput
	// StepTips shows the estimate and the station's tips.
	StepTips
	// StepCongratulations shows the station's badge.
	StepCongratulations
	// StepQuitting indicates the program is exiting.
	StepQuitting
)

// TourOptions configures a TourModel. Zero values get a default estimator and a new tour.
type TourOptions struct {
	Estimator         *engine.Estimator
	Tour              *session.Tour
	ShowEquivalencies bool
}

// TourModel is the Bubble Tea model of the five-station tour.
type TourModel struct {
	ctx               context.Context
	estimator         *engine.Estimator
	tour              *session.Tour
	showEquivalencies bool

	step     TourStep
	stations []session.Station
	table    table.Model
	bar      progress.Model

	// Form state of the open station.
	station     session.Station
	fields      []survey.Field
	inputs      []textinput.Model
	focus       int
	fieldErrors map[string]string
	formErr     string

	// Result of the last submission.
	estimate    *engine.EmissionsEstimate
	achievement session.Achievement
	newBadge    bool

	width  int
	height int
}

// NewTourModel creates a tour positioned on the station map.
func NewTourModel(ctx context.Context, opts TourOptions) *TourModel {
	if opts.Estimator == nil {
		opts.Estimator = engine.New(engine.WithLogger(*logging.FromContext(ctx)))
	}
	if opts.Tour == nil {
		opts.Tour = session.NewTour()
	}

	m := &TourModel{
		ctx:               ctx,
		estimator:         opts.Estimator,
		tour:              opts.Tour,
		showEquivalencies: opts.ShowEquivalencies,
		step:              StepMap,
		stations:          session.Stations(),
		bar:               progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressBarWidth)),
		width:             defaultWidth,
		height:            defaultHeight,
	}
	m.table = m.buildStationTable()
	return m
}

// Init initializes the model.
func (m *TourModel) Init() tea.Cmd {
	return nil
}

// Step returns the current screen.
func (m *TourModel) Step() TourStep { return m.step }

// Tour returns the session the model records into.
func (m *TourModel) Tour() *session.Tour { return m.tour }

// Update handles messages and updates the model state.
func (m *TourModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.step = StepQuitting
			return m, tea.Quit
		}
		switch m.step {
		case StepMap:
			return m.updateMap(msg)
		case StepInput:
			return m.updateInput(msg)
		case StepTips:
			return m.updateTips(msg)
		case StepCongratulations:
			return m.updateCongratulations(msg)
		case StepQuitting:
			return m, nil
		}
	}

	if m.step == StepInput && len(m.inputs) > 0 {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

//nolint:exhaustive // Only handling relevant key types for station navigation.
func (m *TourModel) updateMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.openStation(m.table.Cursor())
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.step = StepQuitting
			return m, tea.Quit
		case "r":
			m.tour.Reset()
			m.refreshTable()
			logging.FromContext(m.ctx).Info().Ctx(m.ctx).Str("component", "tui").Msg("tour reset")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openStation switches to the form of the station at index, prefilled with the
// answers of a previous visit.
func (m *TourModel) openStation(index int) tea.Cmd {
	if index < 0 || index >= len(m.stations) {
		return nil
	}
	m.station = m.stations[index]
	m.fields = survey.FieldsFor(m.station.Category)
	m.inputs = make([]textinput.Model, len(m.fields))
	m.fieldErrors = nil
	m.formErr = ""
	m.focus = 0

	var previous map[string]any
	if est, ok := m.tour.Estimate(m.station.Category); ok {
		previous = est.Inputs
	}
	for i, f := range m.fields {
		m.inputs[i] = newFieldInput(f)
		if v, ok := previous[f.Key]; ok {
			m.inputs[i].SetValue(fmt.Sprint(v))
		}
	}

	m.step = StepInput
	return tea.Batch(m.inputs[0].Focus(), textinput.Blink)
}

//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *TourModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.step = StepMap
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.focusField(m.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.focusField(m.focus - 1)
	case tea.KeyEnter:
		if m.focus < len(m.inputs)-1 {
			return m, m.focusField(m.focus + 1)
		}
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *TourModel) focusField(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// submit parses the form, estimates and records the visit. Invalid answers keep
// the form open with their messages.
func (m *TourModel) submit() {
	log := logging.FromContext(m.ctx)

	raw := make(map[string]string, len(m.inputs))
	for i, f := range m.fields {
		raw[f.Key] = m.inputs[i].Value()
	}

	m.fieldErrors = nil
	m.formErr = ""

	input, err := survey.ParseStrings(m.station.Category, raw)
	if err != nil {
		var ve *survey.ValidationError
		if errors.As(err, &ve) {
			m.fieldErrors = ve.AsMap()
		} else {
			m.formErr = err.Error()
		}
		return
	}

	est, err := m.estimator.EstimateFor(m.station.Category, input)
	if err != nil {
		m.formErr = err.Error()
		log.Warn().Ctx(m.ctx).Str("component", "tui").Err(err).Msg("estimate failed")
		return
	}

	achievement, earned, err := m.tour.RecordAt(m.station.Category, est)
	if err != nil {
		m.formErr = err.Error()
		return
	}

	log.Debug().Ctx(m.ctx).
		Str("component", "tui").
		Str("category", string(est.Category)).
		Int64("emissions", est.Emissions).
		Bool("new_badge", earned).
		Msg("station completed")

	m.estimate = est
	m.achievement = achievement
	m.newBadge = earned
	m.refreshTable()
	m.step = StepTips
}

//nolint:exhaustive // Only handling relevant key types.
func (m *TourModel) updateTips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		m.step = StepCongratulations
	case tea.KeyEsc:
		m.step = StepMap
	}
	return m, nil
}

//nolint:exhaustive // Only handling relevant key types.
func (m *TourModel) updateCongratulations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyEsc:
		m.step = StepMap
	}
	return m, nil
}

func newFieldInput(f survey.Field) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = f.Placeholder
	ti.Prompt = "> "
	if f.MaxLength > 0 {
		ti.CharLimit = f.MaxLength
	}
	ti.Width = fieldInputWidth
	return ti
}

// stationTable columns.
const (
	colWidthStation   = 20
	colWidthStatus    = 14
	colWidthEmissions = 14
	colWidthSavings   = 14
	progressBarWidth  = 40
	fieldInputWidth   = 20
)

func (m *TourModel) buildStationTable() table.Model {
	columns := []table.Column{
		{Title: "Station", Width: colWidthStation},
		{Title: "Status", Width: colWidthStatus},
		{Title: "Emissions", Width: colWidthEmissions},
		{Title: "Savings", Width: colWidthSavings},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.stationRows()),
		table.WithFocused(true),
		table.WithHeight(len(m.stations)+1),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

func (m *TourModel) refreshTable() {
	m.table.SetRows(m.stationRows())
}

func (m *TourModel) stationRows() []table.Row {
	rows := make([]table.Row, len(m.stations))
	for i, s := range m.stations {
		name := s.Icon + " " + s.Name
		est, ok := m.tour.Estimate(s.Category)
		if !ok {
			rows[i] = table.Row{name, "Not visited", "-", "-"}
			continue
		}
		rows[i] = table.Row{
			name,
			"✓ Visited",
			engine.FormatForDisplay(est.Emissions) + " kg",
			engine.FormatForDisplay(est.SavingsValue()) + " kg",
		}
	}
	return rows
}
