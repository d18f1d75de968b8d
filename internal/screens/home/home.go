// Package home renders the module menu: one entry per practice kind,
// plus results and exit.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wortiz/internal/coach"
	"github.com/abhisek/wortiz/internal/progress"
	"github.com/abhisek/wortiz/internal/router"
	"github.com/abhisek/wortiz/internal/screen"
	"github.com/abhisek/wortiz/internal/screens/practice"
	"github.com/abhisek/wortiz/internal/screens/results"
	"github.com/abhisek/wortiz/internal/ui/components"
	"github.com/abhisek/wortiz/internal/ui/layout"
	"github.com/abhisek/wortiz/internal/ui/theme"
	"github.com/abhisek/wortiz/internal/vocab"
)

// Screen is the application's entry screen.
type Screen struct {
	menu    components.Menu
	service *progress.Service
	tips    *coach.Service
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen. tips may be nil when no LLM provider is
// configured; practice then runs without coach tips.
func New(service *progress.Service, tips *coach.Service) *Screen {
	var items []components.MenuItem
	for _, kind := range vocab.AllKinds() {
		k := kind
		items = append(items, components.MenuItem{
			Label: k.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: practice.New(service, tips, progress.CycleRequest{Kind: k}),
					}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "Rezultati",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: results.New(service, tips)}
				}
			},
		},
		components.MenuItem{
			Label:  "Izhod",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)

	return &Screen{
		menu:    components.NewMenu(items),
		service: service,
		tips:    tips,
	}
}

func (h *Screen) Init() tea.Cmd {
	return nil
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) View(width, height int) string {
	title := theme.Title.Width(width).Render("W O R T I Z")
	subtitle := theme.Subtitle.Width(width).Render("nemško besedišče za slovenske govorce")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	parts := []string{"", title, subtitle, "", "", menu}
	content := strings.Join(parts, "\n")

	pad := height - lipgloss.Height(content)
	if pad > 0 {
		content = strings.Repeat("\n", pad/3) + content
	}
	return content
}

func (h *Screen) Title() string {
	return "Domov"
}

func (h *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Premik"},
		{Key: "1-9", Description: "Hitra izbira"},
		{Key: "Enter", Description: "Izberi"},
		{Key: "Ctrl+C", Description: "Izhod"},
	}
}
