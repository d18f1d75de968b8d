package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wortiz/internal/ui/layout"
)

// Screen is one view in the router stack: the home menu, a practice
// cycle, or the results browser.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider supplies footer key hints. Screens that don't
// implement it get depth-based defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
