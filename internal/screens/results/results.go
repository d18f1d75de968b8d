// Package results shows per-item history for each vocabulary kind,
// ordered weakest first, and can launch a remedial cycle over the
// weakest missed items.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wortiz/internal/adaptive"
	"github.com/abhisek/wortiz/internal/coach"
	"github.com/abhisek/wortiz/internal/progress"
	"github.com/abhisek/wortiz/internal/router"
	"github.com/abhisek/wortiz/internal/screen"
	"github.com/abhisek/wortiz/internal/screens/practice"
	"github.com/abhisek/wortiz/internal/ui/layout"
	"github.com/abhisek/wortiz/internal/ui/theme"
	"github.com/abhisek/wortiz/internal/vocab"
)

const remedialLimit = 10

type resultsLoadedMsg struct {
	Kind  vocab.Kind
	Items []vocab.Item
	Snap  vocab.StatsSnapshot
	Err   error
}

// Screen displays historical counters per item, weakest first.
type Screen struct {
	service *progress.Service
	tips    *coach.Service

	kindIdx  int
	items    []vocab.Item
	snap     vocab.StatsSnapshot
	loaded   bool
	selected int
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the results screen starting on the first kind.
func New(service *progress.Service, tips *coach.Service) *Screen {
	return &Screen{service: service, tips: tips}
}

func (s *Screen) kind() vocab.Kind {
	return vocab.AllKinds()[s.kindIdx]
}

func (s *Screen) Init() tea.Cmd {
	return s.loadKind(s.kind())
}

func (s *Screen) Title() string {
	return "Rezultati"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Modul"},
		{Key: "↑↓", Description: "Premik"},
	}
	if len(s.items) > 0 {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Ponovi šibke"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Nazaj"})
}

func (s *Screen) loadKind(kind vocab.Kind) tea.Cmd {
	service := s.service
	return func() tea.Msg {
		ctx := context.Background()
		items, err := service.Results(ctx, kind)
		if err != nil {
			return resultsLoadedMsg{Kind: kind, Err: err}
		}
		snap, err := service.Stats(ctx, kind)
		if err != nil {
			return resultsLoadedMsg{Kind: kind, Err: err}
		}

		// Weakest first, so the items that need work sit at the top.
		ordered := make([]vocab.Item, 0, len(items))
		for item := range adaptive.Weakest(items) {
			ordered = append(ordered, item)
		}
		return resultsLoadedMsg{Kind: kind, Items: ordered, Snap: snap}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		if msg.Kind != s.kind() {
			// Stale load after a kind switch.
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Items
			s.snap = msg.Snap
			s.errMsg = ""
		}
		s.loaded = true
		s.selected = 0
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			return s.switchKind(1)
		case "shift+tab", "left", "h":
			return s.switchKind(-1)
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "r", "R":
			if len(s.items) == 0 {
				return s, nil
			}
			kind := s.kind()
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.NewRemedial(s.service, s.tips, kind, remedialLimit),
				}
			}
		}
	}
	return s, nil
}

func (s *Screen) switchKind(delta int) (screen.Screen, tea.Cmd) {
	n := len(vocab.AllKinds())
	s.kindIdx = (s.kindIdx + delta + n) % n
	s.loaded = false
	s.items = nil
	return s, s.loadKind(s.kind())
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("Napaka: " + s.errMsg))
		return b.String()
	}
	if !s.loaded {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Nalagam rezultate ..."))
		return b.String()
	}
	if len(s.items) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Še ni poskusov. Začni z vajo!"))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(s.snap.String())))
	b.WriteString("\n\n")

	// Keep the selection visible in the available rows.
	rows := height - 8
	if rows < 3 {
		rows = 3
	}
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	end := start + rows
	if end > len(s.items) {
		end = len(s.items)
	}

	for i := start; i < end; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRow(i)))
		b.WriteString("\n")
	}
	if end < len(s.items) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("… še %d", len(s.items)-end))))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) renderTabs() string {
	var parts []string
	for i, kind := range vocab.AllKinds() {
		label := kind.Label()
		if i == s.kindIdx {
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (s *Screen) renderRow(i int) string {
	item := s.items[i]
	st := item.Stats

	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}

	solution := strings.Join(item.Solution, " · ")
	line := fmt.Sprintf("%s%-24s %-28s %3dx  %3.0f%%  niz %d",
		prefix, trim(item.Translation, 24), trim(solution, 28),
		st.Attempts, st.Accuracy()*100, st.Streak)
	if st.Reveals > 0 {
		line += fmt.Sprintf("  (%d pogledov)", st.Reveals)
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case i == s.selected:
		style = style.Foreground(theme.Primary).Bold(true)
	case weak(st):
		style = style.Foreground(theme.Error)
	case st.Streak >= 3:
		style = style.Foreground(theme.Success)
	}
	return style.Render(line)
}

// weak mirrors the remediation threshold: unseen, inaccurate, or no
// streak yet.
func weak(st vocab.ItemStats) bool {
	return st.Attempts == 0 || st.Accuracy() < 0.88 || st.Streak < 3
}

func trim(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
