package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("42")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorSavings   = lipgloss.Color("78")
	ColorBorder    = lipgloss.Color("36")
	ColorSelectFg  = lipgloss.Color("229")
	ColorSelectBg  = lipgloss.Color("28")
)

// Layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 24
	borderPadding = 2
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	SavingsStyle = lipgloss.NewStyle().Foreground(ColorSavings).Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical)

	HighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorHighlight).
			Padding(1, 2).
			Align(lipgloss.Center)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)

	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorSelectFg).Background(ColorSelectBg).Bold(true)
)
