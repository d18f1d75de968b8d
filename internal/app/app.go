package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wortiz/internal/coach"
	"github.com/abhisek/wortiz/internal/progress"
	"github.com/abhisek/wortiz/internal/router"
	"github.com/abhisek/wortiz/internal/screen"
	"github.com/abhisek/wortiz/internal/screens/home"
	"github.com/abhisek/wortiz/internal/ui/layout"
	"github.com/abhisek/wortiz/internal/vocab"
)

// Options carries the app's injected dependencies. Tips is nil when no
// LLM provider is configured; the app runs fine without it.
type Options struct {
	Progress *progress.Service
	Tips     *coach.Service
}

// headerStatsMsg refreshes the aggregate counters shown in the header.
type headerStatsMsg layout.HeaderStats

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Service
	stats    layout.HeaderStats
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Progress, opts.Tips)
	return AppModel{
		router:   router.New(homeScreen),
		progress: opts.Progress,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadHeaderStats()
}

// loadHeaderStats sums the snapshots of every kind for the header line.
func (m AppModel) loadHeaderStats() tea.Cmd {
	service := m.progress
	return func() tea.Msg {
		ctx := context.Background()
		var total vocab.StatsSnapshot
		for _, kind := range vocab.AllKinds() {
			snap, err := service.Stats(ctx, kind)
			if err != nil {
				continue
			}
			total.Attempts += snap.Attempts
			total.Correct += snap.Correct
			total.CycleCount += snap.CycleCount
		}
		return headerStatsMsg{Accuracy: total.Accuracy(), Cycles: total.CycleCount}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.stats = layout.HeaderStats(msg)
		return m, nil

	case router.PopScreenMsg, router.PopToRootMsg:
		// A cycle may have finished; refresh the header counters.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadHeaderStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok && len(provider.KeyHints()) > 0 {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Nazaj"},
			{Key: "Ctrl+C", Description: "Izhod"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Premik"},
			{Key: "Enter", Description: "Izberi"},
			{Key: "Ctrl+C", Description: "Izhod"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	frame := layout.RenderFrame(header, m.router.View(m.width, contentHeight), footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
