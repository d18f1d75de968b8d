package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wortiz/internal/progress"
	"github.com/abhisek/wortiz/internal/router"
	"github.com/abhisek/wortiz/internal/screen"
	sess "github.com/abhisek/wortiz/internal/session"
	"github.com/abhisek/wortiz/internal/vocab"
)

// mockBackend implements session.Backend for testing.
type mockBackend struct {
	attempts  []sess.AttemptRequest
	completed []vocab.Kind
}

func (m *mockBackend) RecordAttempt(_ context.Context, req sess.AttemptRequest) error {
	m.attempts = append(m.attempts, req)
	return nil
}

func (m *mockBackend) CompleteCycle(_ context.Context, kind vocab.Kind) error {
	m.completed = append(m.completed, kind)
	return nil
}

func (m *mockBackend) Stats(_ context.Context, _ vocab.Kind) (vocab.StatsSnapshot, error) {
	return vocab.StatsSnapshot{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func nounItems() []vocab.Item {
	return []vocab.Item{
		{ID: 1, Translation: "pes", Labels: vocab.NounLabels, Solution: []string{"der Hund"}},
		{ID: 2, Translation: "mačka", Labels: vocab.NounLabels, Solution: []string{"die Katze"}},
	}
}

// testScreen builds a practice screen with a running machine over the
// given items, bypassing cycle construction.
func testScreen(items []vocab.Item) (*Screen, *mockBackend) {
	backend := &mockBackend{}
	s := &Screen{kind: vocab.KindNoun}
	s.machine = sess.NewMachine(backend)
	if err := s.machine.StartCycle(&vocab.Cycle{Number: 1, Mode: vocab.ModeRandom, Kind: vocab.KindNoun, Items: items}); err != nil {
		panic(err)
	}
	s.cycleNumber = 1
	s.cycleMode = vocab.ModeRandom
	s.phase = phaseQuestion
	s.buildInputs()
	return s, backend
}

func TestPractice_Title(t *testing.T) {
	s := &Screen{kind: vocab.KindNoun}
	if s.Title() != "Samostalniki" {
		t.Errorf("Title = %q, want %q", s.Title(), "Samostalniki")
	}
}

func TestPractice_SubmitCorrect(t *testing.T) {
	s, backend := testScreen(nounItems())
	s.inputs[0].SetValue("der Hund")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if ps.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", ps.phase)
	}
	if eval := ps.machine.Evaluation(); eval == nil || !eval.Correct {
		t.Error("expected a correct evaluation")
	}
	if ps.correct != 1 || ps.missed != 0 {
		t.Errorf("correct/missed = %d/%d, want 1/0", ps.correct, ps.missed)
	}
	if len(backend.attempts) != 1 || !backend.attempts[0].Correct {
		t.Errorf("expected one correct attempt recorded, got %+v", backend.attempts)
	}
}

func TestPractice_SubmitWrongQueuesRetry(t *testing.T) {
	s, backend := testScreen(nounItems())
	s.inputs[0].SetValue("das Hund")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if ps.missed != 1 {
		t.Errorf("missed = %d, want 1", ps.missed)
	}
	if !ps.machine.RetryPending() {
		t.Error("expected a pending retry after a wrong answer")
	}
	if len(backend.attempts) != 1 || backend.attempts[0].Correct {
		t.Errorf("expected one wrong attempt recorded, got %+v", backend.attempts)
	}
}

func TestPractice_RevealCountsAsMiss(t *testing.T) {
	s, backend := testScreen(nounItems())

	scr, _ := s.reveal()
	ps := scr.(*Screen)

	if ps.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", ps.phase)
	}
	if ps.missed != 1 {
		t.Errorf("missed = %d, want 1", ps.missed)
	}
	if len(backend.attempts) != 1 || !backend.attempts[0].Revealed {
		t.Errorf("expected a revealed attempt, got %+v", backend.attempts)
	}
}

func TestPractice_AdvanceMovesToNextQuestion(t *testing.T) {
	s, _ := testScreen(nounItems())
	s.inputs[0].SetValue("der Hund")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if ps.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", ps.phase)
	}
	if got := ps.machine.Current().Translation; got != "mačka" {
		t.Errorf("current prompt = %q, want %q", got, "mačka")
	}
	if len(ps.inputs) != len(vocab.NounLabels) {
		t.Errorf("inputs = %d, want %d", len(ps.inputs), len(vocab.NounLabels))
	}
}

func TestPractice_CompletionShowsSummary(t *testing.T) {
	s, backend := testScreen(nounItems()[:1])
	s.inputs[0].SetValue("der Hund")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if ps.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", ps.phase)
	}
	if cmd == nil {
		t.Error("expected a summary load command")
	}
	if len(backend.completed) != 1 || backend.completed[0] != vocab.KindNoun {
		t.Errorf("completed = %v, want [noun]", backend.completed)
	}
}

func TestPractice_SummaryEnterPops(t *testing.T) {
	s, _ := testScreen(nounItems()[:1])
	s.phase = phaseSummary
	s.summary = &summaryReadyMsg{NextMode: vocab.ModeAdaptive}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected a pop-to-root message from summary")
	}
}

func TestPractice_SummaryRetryRestartsWithRemedial(t *testing.T) {
	s, _ := testScreen(nounItems()[:1])
	s.phase = phaseSummary
	s.missed = 1
	s.service = &progress.Service{}

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected a replace message, got %T", cmd())
	}
	next, ok := msg.Screen.(*Screen)
	if !ok || next.kind != vocab.KindNoun {
		t.Errorf("expected a remedial noun screen, got %v", msg.Screen)
	}
}

func TestPractice_NoContentError(t *testing.T) {
	s := &Screen{kind: vocab.KindNumber}
	scrAny, _ := s.handleCycleReady(cycleReadyMsg{Err: progress.ErrNoItems})
	ps := scrAny.(*Screen)

	if ps.errMsg == "" {
		t.Fatal("expected an error message")
	}

	_, cmd := ps.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message from error state")
	}
}

func TestPractice_ViewRendersQuestion(t *testing.T) {
	s, _ := testScreen(nounItems())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestPractice_KeyHintsByPhase(t *testing.T) {
	s, _ := testScreen(nounItems())
	if len(s.KeyHints()) == 0 {
		t.Error("expected hints in question phase")
	}
	s.phase = phaseSummary
	s.missed = 1
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("summary hints = %d, want 2", len(hints))
	}
}
