package session

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/wortiz/internal/vocab"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	attempts   []AttemptRequest
	completed  []vocab.Kind
	recordErr  error
	completeErr error
	stats      vocab.StatsSnapshot
}

func (b *mockBackend) RecordAttempt(_ context.Context, req AttemptRequest) error {
	b.attempts = append(b.attempts, req)
	return b.recordErr
}

func (b *mockBackend) CompleteCycle(_ context.Context, kind vocab.Kind) error {
	b.completed = append(b.completed, kind)
	return b.completeErr
}

func (b *mockBackend) Stats(_ context.Context, _ vocab.Kind) (vocab.StatsSnapshot, error) {
	return b.stats, nil
}

func testCycle(n int) *vocab.Cycle {
	items := make([]vocab.Item, 0, n)
	for i := range n {
		items = append(items, vocab.Item{
			ID:          int64(i + 1),
			Translation: "pes",
			Labels:      vocab.NounLabels,
			Solution:    []string{"der Hund"},
		})
	}
	return &vocab.Cycle{Number: 1, Mode: vocab.ModeRandom, Kind: vocab.KindNoun, Items: items}
}

func TestStartCycle(t *testing.T) {
	m := NewMachine(&mockBackend{})

	if err := m.StartCycle(testCycle(3)); err != nil {
		t.Fatalf("StartCycle: %v", err)
	}
	if m.Phase() != PhaseRunning {
		t.Errorf("Phase = %s, want running", m.Phase())
	}
	if m.Stage() != StageOpen {
		t.Errorf("Stage = %v, want open", m.Stage())
	}
	if m.Position() != 0 || m.Total() != 3 {
		t.Errorf("Position/Total = %d/%d, want 0/3", m.Position(), m.Total())
	}
	if m.Evaluation() != nil {
		t.Error("Evaluation must be nil while open")
	}
}

func TestStartCycle_Empty(t *testing.T) {
	m := NewMachine(&mockBackend{})
	if err := m.StartCycle(&vocab.Cycle{Kind: vocab.KindNoun}); !errors.Is(err, ErrEmptyCycle) {
		t.Errorf("err = %v, want ErrEmptyCycle", err)
	}
	if m.Phase() != PhaseIdle {
		t.Error("machine must stay idle after rejected start")
	}
}

func TestStartCycle_WhileRunning(t *testing.T) {
	m := NewMachine(&mockBackend{})
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}
	if err := m.StartCycle(testCycle(2)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestSubmitAnswer_Correct(t *testing.T) {
	backend := &mockBackend{}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}

	if err := m.SubmitAnswer(context.Background(), []string{"der  hund"}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	eval := m.Evaluation()
	if eval == nil || !eval.Correct {
		t.Fatalf("Evaluation = %+v, want correct", eval)
	}
	if m.Stage() != StageClosed {
		t.Error("stage must be closed after submit")
	}
	if m.RetryPending() {
		t.Error("correct answer must not queue a retry")
	}
	if len(backend.attempts) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(backend.attempts))
	}
	if !backend.attempts[0].Correct || backend.attempts[0].Revealed {
		t.Error("correct attempt must record correct=true, revealed=false")
	}
	if backend.attempts[0].CycleNumber != 1 {
		t.Errorf("CycleNumber = %d, want 1", backend.attempts[0].CycleNumber)
	}
}

func TestSubmitAnswer_Wrong(t *testing.T) {
	backend := &mockBackend{}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}

	if err := m.SubmitAnswer(context.Background(), []string{"die Katze"}); err != nil {
		t.Fatal(err)
	}

	if eval := m.Evaluation(); eval == nil || eval.Correct {
		t.Fatalf("Evaluation = %+v, want incorrect", eval)
	}
	if !m.RetryPending() {
		t.Error("wrong answer must queue a retry")
	}
	if backend.attempts[0].Correct || !backend.attempts[0].Revealed {
		t.Error("wrong attempt records correct=false, revealed=true (solution is shown)")
	}
}

func TestSubmitAnswer_WhileClosed(t *testing.T) {
	m := NewMachine(&mockBackend{})
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}
	if err := m.SubmitAnswer(context.Background(), []string{"der Hund"}); err != nil {
		t.Fatal(err)
	}
	err := m.SubmitAnswer(context.Background(), []string{"der Hund"})
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestRevealSolution(t *testing.T) {
	backend := &mockBackend{}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}

	if err := m.RevealSolution(context.Background()); err != nil {
		t.Fatal(err)
	}

	eval := m.Evaluation()
	if eval == nil || eval.Correct || !eval.Revealed {
		t.Fatalf("Evaluation = %+v, want revealed and incorrect", eval)
	}
	if !m.RetryPending() {
		t.Error("reveal must queue a retry")
	}
	if !backend.attempts[0].Revealed {
		t.Error("reveal must record revealed=true")
	}
}

func TestAdvance_SplicesRetryAfterCurrent(t *testing.T) {
	backend := &mockBackend{}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(3)); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// Question 1 correct.
	if err := m.SubmitAnswer(ctx, []string{"der Hund"}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Advance(ctx); err != nil {
		t.Fatal(err)
	}

	// Question 2 wrong: list grows to 4 and item 2 reappears right after.
	missedID := m.Current().ID
	if err := m.SubmitAnswer(ctx, []string{"napačno"}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Advance(ctx); err != nil {
		t.Fatal(err)
	}
	if m.Total() != 4 {
		t.Fatalf("Total = %d, want 4 after retry splice", m.Total())
	}
	if m.Cycle().Items[2].ID != missedID {
		t.Errorf("retry item id = %d, want %d at position 2", m.Cycle().Items[2].ID, missedID)
	}
	if m.RetryPending() {
		t.Error("advance must drain the retry slot")
	}

	// Retry pass answers correctly; then the original third item.
	if err := m.SubmitAnswer(ctx, []string{"der Hund"}); err != nil {
		t.Fatal(err)
	}
	if done, err := m.Advance(ctx); err != nil || done {
		t.Fatalf("Advance = (%v, %v), want (false, nil)", done, err)
	}
	if err := m.SubmitAnswer(ctx, []string{"der Hund"}); err != nil {
		t.Fatal(err)
	}
	done, err := m.Advance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("expected completion after 4th question")
	}

	if len(backend.attempts) != 4 {
		t.Errorf("attempts = %d, want 4", len(backend.attempts))
	}
	if len(backend.completed) != 1 {
		t.Errorf("complete cycle calls = %d, want exactly 1", len(backend.completed))
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle after completion", m.Phase())
	}
}

// A wrong answer on the final question extends the cycle instead of ending it.
func TestAdvance_WrongLastQuestionExtends(t *testing.T) {
	backend := &mockBackend{}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(1)); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := m.SubmitAnswer(ctx, []string{"napačno"}); err != nil {
		t.Fatal(err)
	}
	done, err := m.Advance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("cycle must not complete while a retry is pending")
	}
	if m.Total() != 2 || m.Position() != 1 {
		t.Errorf("Total/Position = %d/%d, want 2/1", m.Total(), m.Position())
	}

	if err := m.SubmitAnswer(ctx, []string{"der Hund"}); err != nil {
		t.Fatal(err)
	}
	done, err = m.Advance(ctx)
	if err != nil || !done {
		t.Fatalf("Advance = (%v, %v), want (true, nil)", done, err)
	}
	if len(backend.completed) != 1 {
		t.Errorf("complete cycle calls = %d, want 1", len(backend.completed))
	}
}

func TestAdvance_WhileOpen(t *testing.T) {
	m := NewMachine(&mockBackend{})
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Advance(context.Background()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestCancel(t *testing.T) {
	backend := &mockBackend{}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(3)); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// Cancel from the closed stage too.
	if err := m.SubmitAnswer(ctx, []string{"napačno"}); err != nil {
		t.Fatal(err)
	}
	if err := m.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", m.Phase())
	}
	if m.Cycle() != nil {
		t.Error("cycle must be discarded on cancel")
	}
	if len(backend.completed) != 0 {
		t.Error("cancel must not record cycle completion")
	}

	if err := m.Cancel(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second cancel err = %v, want ErrInvalidState", err)
	}
}

// A failed record-attempt call leaves the graded state in place.
func TestSubmitAnswer_BackendFailureKeepsLocalState(t *testing.T) {
	backend := &mockBackend{recordErr: errors.New("connection refused")}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(2)); err != nil {
		t.Fatal(err)
	}

	err := m.SubmitAnswer(context.Background(), []string{"napačno"})
	if err == nil {
		t.Fatal("expected backend error to surface")
	}
	if m.Stage() != StageClosed {
		t.Error("local transition must not be rolled back")
	}
	if eval := m.Evaluation(); eval == nil || eval.Correct {
		t.Errorf("Evaluation = %+v, want graded incorrect", eval)
	}
	if !m.RetryPending() {
		t.Error("retry queueing must survive the backend failure")
	}
}

func TestAdvance_CompleteCycleFailureStillGoesIdle(t *testing.T) {
	backend := &mockBackend{completeErr: errors.New("boom")}
	m := NewMachine(backend)
	if err := m.StartCycle(testCycle(1)); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := m.SubmitAnswer(ctx, []string{"der Hund"}); err != nil {
		t.Fatal(err)
	}

	done, err := m.Advance(ctx)
	if !done {
		t.Error("cycle is locally finished even when completion fails")
	}
	if err == nil {
		t.Error("completion error must surface")
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", m.Phase())
	}
}

// The same item may legitimately appear twice (original pass + retry pass);
// the machine never deduplicates by id.
func TestRetry_NoDeduplication(t *testing.T) {
	m := NewMachine(&mockBackend{})
	cycle := testCycle(2)
	cycle.Items[1] = cycle.Items[0]
	if err := m.StartCycle(cycle); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := m.SubmitAnswer(ctx, []string{"x"}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Advance(ctx); err != nil {
		t.Fatal(err)
	}
	if m.Total() != 3 {
		t.Errorf("Total = %d, want 3 (duplicate ids are kept)", m.Total())
	}
}
