package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wortiz/internal/router"
	"github.com/abhisek/wortiz/internal/screens/practice"
	"github.com/abhisek/wortiz/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loadedScreen() *Screen {
	s := New(nil, nil)
	s.Update(resultsLoadedMsg{
		Kind: vocab.KindNoun,
		Items: []vocab.Item{
			{ID: 1, Translation: "pes", Solution: []string{"der Hund"}, Stats: vocab.ItemStats{Attempts: 4, Correct: 1}},
			{ID: 2, Translation: "mačka", Solution: []string{"die Katze"}, Stats: vocab.ItemStats{Attempts: 5, Correct: 5, Streak: 5}},
		},
		Snap: vocab.StatsSnapshot{Attempts: 9, Correct: 6, Wrong: 3},
	})
	return s
}

func TestResults_LoadedViewListsItems(t *testing.T) {
	s := loadedScreen()
	view := s.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	for _, want := range []string{"pes", "der Hund", "mačka"} {
		if !containsPlain(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResults_StaleLoadIgnored(t *testing.T) {
	s := loadedScreen()
	s.Update(resultsLoadedMsg{Kind: vocab.KindVerb, Items: nil})
	if len(s.items) != 2 {
		t.Errorf("items = %d, want 2 (stale load must not apply)", len(s.items))
	}
}

func TestResults_TabSwitchesKindAndReloads(t *testing.T) {
	s := loadedScreen()
	scr, cmd := s.Update(specialKey(tea.KeyTab))
	rs := scr.(*Screen)

	if rs.kind() != vocab.AllKinds()[1] {
		t.Errorf("kind = %q, want %q", rs.kind(), vocab.AllKinds()[1])
	}
	if rs.loaded {
		t.Error("expected loaded to reset on kind switch")
	}
	if cmd == nil {
		t.Error("expected a reload command")
	}
}

func TestResults_TabWrapsAround(t *testing.T) {
	s := loadedScreen()
	n := len(vocab.AllKinds())
	var scr = s
	for i := 0; i < n; i++ {
		next, _ := scr.switchKind(1)
		scr = next.(*Screen)
	}
	if scr.kind() != vocab.AllKinds()[0] {
		t.Errorf("kind = %q, want wrap to first", scr.kind())
	}
}

func TestResults_Navigation(t *testing.T) {
	s := loadedScreen()
	s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want clamp at 1", s.selected)
	}
	s.Update(keyPress('k'))
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestResults_RemedialPush(t *testing.T) {
	s := loadedScreen()
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*practice.Screen); !ok {
		t.Errorf("pushed %T, want practice screen", msg.Screen)
	}
}

func TestResults_RemedialNeedsItems(t *testing.T) {
	s := New(nil, nil)
	s.Update(resultsLoadedMsg{Kind: vocab.KindNoun})
	if _, cmd := s.Update(keyPress('r')); cmd != nil {
		t.Error("expected no command without attempted items")
	}
}

func TestResults_EmptyView(t *testing.T) {
	s := New(nil, nil)
	s.Update(resultsLoadedMsg{Kind: vocab.KindNoun})
	view := s.View(80, 24)
	if !containsPlain(view, "Še ni poskusov") {
		t.Error("expected empty-state message")
	}
}

// containsPlain searches the rendered output; styling wraps but never
// rewrites the literal runes.
func containsPlain(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
