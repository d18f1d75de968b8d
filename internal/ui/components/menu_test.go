package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testMenu(fired *string) Menu {
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			*fired = name
			return nil
		}
	}
	return NewMenu([]MenuItem{
		{Label: "Vaja", Action: action("vaja")},
		{Label: "Rezultati", Action: action("rezultati"), Disabled: true},
		{Label: "Izhod", Action: action("izhod")},
	})
}

func menuKey(s string) tea.KeyMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(menuKey("j"))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (disabled item skipped)", m.Selected)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(menuKey("k"))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (wrap to bottom)", m.Selected)
	}
	m, _ = m.Update(menuKey("j"))
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0 (wrap to top)", m.Selected)
	}
}

func TestMenuDigitShortcutActivates(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(menuKey("3"))
	if fired != "izhod" {
		t.Errorf("fired = %q, want izhod", fired)
	}
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
}

func TestMenuDigitShortcutIgnoresDisabled(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(menuKey("2"))
	if fired != "" {
		t.Errorf("fired = %q, want no activation", fired)
	}
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenuEnterActivatesSelection(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "vaja" {
		t.Errorf("fired = %q, want vaja", fired)
	}
}

func TestMenuViewNumbersItems(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	view := m.View()
	if !strings.Contains(view, "1. Vaja") || !strings.Contains(view, "3. Izhod") {
		t.Errorf("view missing numbered labels:\n%s", view)
	}
}
