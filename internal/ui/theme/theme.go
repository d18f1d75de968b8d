package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette tuned for long sessions in dark terminals.
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#A78BFA") // Violet
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#E7E5E4") // Warm White
	TextDim   = lipgloss.Color("#78716C") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near Black
	BgCard    = lipgloss.Color("#292524") // Warm Dark
	Border    = lipgloss.Color("#44403C") // Stone Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	German = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Slovenian = lipgloss.NewStyle().
			Foreground(Text).
			Italic(true)
)
