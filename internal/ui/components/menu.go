package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wortiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Items can be selected with the
// arrow keys or activated directly with their number key.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = m.previousEnabled(m.Selected)
	case "down", "j":
		m.Selected = m.nextEnabled(m.Selected)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.Items) && !m.Items[idx].Disabled {
				m.Selected = idx
				return m, m.activate(idx)
			}
		}
	}

	return m, nil
}

// previousEnabled walks upward from the given index, wrapping past the
// top of the list.
func (m Menu) previousEnabled(from int) int {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((from-step)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

// nextEnabled walks downward from the given index, wrapping past the
// bottom of the list.
func (m Menu) nextEnabled(from int) int {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

func (m Menu) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.Items) {
		return nil
	}
	item := m.Items[idx]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu with number shortcuts.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		switch {
		case item.Disabled:
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    "+label) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+label) + "\n"
		default:
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+label) + "\n"
		}
	}
	return s
}
