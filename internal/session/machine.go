// Package session implements the practice-session state machine.
//
// A Machine owns one active cycle at a time and is driven by discrete user
// actions: submit, reveal, advance, cancel. Grading and retry policy are
// local; attempt recording and cycle completion go through the Backend.
// Local transitions are applied before the backend call and are not rolled
// back when the call fails; the error is surfaced to the caller instead.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/wortiz/internal/answer"
	"github.com/abhisek/wortiz/internal/vocab"
)

// ErrInvalidState is returned when an operation is invoked in a phase or
// stage that does not permit it. The machine's state is left unchanged.
var ErrInvalidState = errors.New("operation not valid in current state")

// ErrEmptyCycle is returned by StartCycle for a cycle with no items.
var ErrEmptyCycle = errors.New("cycle has no items")

// Phase is the machine's top-level state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseCompleting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseCompleting:
		return "completing"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Stage is the per-question sub-state while running.
type Stage int

const (
	// StageOpen: the learner may still edit the answer set.
	StageOpen Stage = iota
	// StageClosed: the answer was submitted or revealed; awaiting advance.
	StageClosed
)

// Evaluation is the outcome of one submitted or revealed answer.
type Evaluation struct {
	Correct  bool
	Revealed bool
	Message  string
}

// AttemptRequest is the record-attempt payload sent to the Backend.
type AttemptRequest struct {
	ItemID      int64
	Kind        vocab.Kind
	Answers     []string
	Correct     bool
	Revealed    bool
	CycleNumber int
}

// Backend is the engine's boundary to the collaborator that persists
// attempts and cycle completions. Calls are not retried here; a failure
// surfaces to the caller with the local transition already applied.
type Backend interface {
	RecordAttempt(ctx context.Context, req AttemptRequest) error
	CompleteCycle(ctx context.Context, kind vocab.Kind) error
	Stats(ctx context.Context, kind vocab.Kind) (vocab.StatsSnapshot, error)
}

// Machine drives one practice cycle. Not safe for concurrent use: the
// caller must serialize actions, which the TUI does by disabling input
// while an action is in flight.
type Machine struct {
	backend Backend

	phase Phase
	cycle *vocab.Cycle
	pos   int
	stage Stage
	eval  *Evaluation
	retry RetryQueue
}

// NewMachine creates an idle machine bound to a backend.
func NewMachine(backend Backend) *Machine {
	return &Machine{backend: backend}
}

// Phase returns the machine's top-level state.
func (m *Machine) Phase() Phase { return m.phase }

// Stage returns the per-question stage. Meaningful only while running.
func (m *Machine) Stage() Stage { return m.stage }

// Cycle returns the active cycle, or nil when idle.
func (m *Machine) Cycle() *vocab.Cycle { return m.cycle }

// Position returns the current zero-based question index.
func (m *Machine) Position() int { return m.pos }

// Total returns the current item count, including spliced retries.
func (m *Machine) Total() int {
	if m.cycle == nil {
		return 0
	}
	return len(m.cycle.Items)
}

// Current returns the item being asked, or nil when idle.
func (m *Machine) Current() *vocab.Item {
	if m.cycle == nil || m.pos >= len(m.cycle.Items) {
		return nil
	}
	return &m.cycle.Items[m.pos]
}

// Evaluation returns the outcome of the current question once closed,
// nil while the question is still open.
func (m *Machine) Evaluation() *Evaluation { return m.eval }

// RetryPending reports whether the current question queued a retry.
func (m *Machine) RetryPending() bool { return m.retry.Pending() }

// StartCycle adopts an already-built cycle and begins its first question.
// Valid only when idle; the cycle must not be empty.
func (m *Machine) StartCycle(cycle *vocab.Cycle) error {
	if m.phase != PhaseIdle {
		return fmt.Errorf("start cycle: %w: phase %s", ErrInvalidState, m.phase)
	}
	if cycle == nil || len(cycle.Items) == 0 {
		return ErrEmptyCycle
	}
	m.cycle = cycle
	m.pos = 0
	m.stage = StageOpen
	m.eval = nil
	m.retry.Clear()
	m.phase = PhaseRunning
	return nil
}

// SubmitAnswer grades the answer set for the current question and closes
// the question. A wrong answer queues the item for one retry later in the
// same cycle. The attempt is recorded with the backend before returning;
// a recording failure leaves the graded state in place and is returned.
func (m *Machine) SubmitAnswer(ctx context.Context, answers []string) error {
	if m.phase != PhaseRunning || m.stage != StageOpen {
		return fmt.Errorf("submit answer: %w: phase %s", ErrInvalidState, m.phase)
	}
	item := m.Current()

	correct := answer.Match(answers, item.Solution, m.cycle.Kind)
	if correct {
		m.eval = &Evaluation{Correct: true, Message: "Pravilno!"}
	} else {
		m.eval = &Evaluation{Correct: false, Message: "Ni bilo pravilno."}
	}
	m.retry.OnAnswered(*item, correct)
	m.stage = StageClosed

	// A wrong answer shows the solution, so it records as a reveal.
	return m.record(ctx, AttemptRequest{
		ItemID:      item.ID,
		Kind:        m.cycle.Kind,
		Answers:     answers,
		Correct:     correct,
		Revealed:    !correct,
		CycleNumber: m.cycle.Number,
	})
}

// RevealSolution discloses the solution without grading: the question is
// scored as wrong-with-reveal and queued for retry.
func (m *Machine) RevealSolution(ctx context.Context) error {
	if m.phase != PhaseRunning || m.stage != StageOpen {
		return fmt.Errorf("reveal solution: %w: phase %s", ErrInvalidState, m.phase)
	}
	item := m.Current()

	m.eval = &Evaluation{Correct: false, Revealed: true, Message: "Rešitev prikazana."}
	m.retry.OnAnswered(*item, false)
	m.stage = StageClosed

	return m.record(ctx, AttemptRequest{
		ItemID:      item.ID,
		Kind:        m.cycle.Kind,
		Revealed:    true,
		CycleNumber: m.cycle.Number,
	})
}

// Advance moves to the next question. A pending retry is spliced in
// immediately after the current position first, so a wrong answer on the
// final question extends the cycle by one. When the (possibly extended)
// cycle is exhausted, completion is recorded and the machine goes idle.
// Returns true when the cycle finished.
func (m *Machine) Advance(ctx context.Context) (bool, error) {
	if m.phase != PhaseRunning || m.stage != StageClosed {
		return false, fmt.Errorf("advance: %w: phase %s", ErrInvalidState, m.phase)
	}

	if item, ok := m.retry.Take(); ok {
		m.spliceAfterCurrent(item)
	}

	if m.pos+1 >= len(m.cycle.Items) {
		m.phase = PhaseCompleting
		kind := m.cycle.Kind
		err := m.backend.CompleteCycle(ctx, kind)
		m.reset()
		if err != nil {
			return true, fmt.Errorf("complete cycle: %w", err)
		}
		return true, nil
	}

	m.pos++
	m.stage = StageOpen
	m.eval = nil
	return false, nil
}

// Cancel abandons the running cycle without notifying the backend.
func (m *Machine) Cancel() error {
	if m.phase != PhaseRunning {
		return fmt.Errorf("cancel: %w: phase %s", ErrInvalidState, m.phase)
	}
	m.reset()
	return nil
}

func (m *Machine) record(ctx context.Context, req AttemptRequest) error {
	if err := m.backend.RecordAttempt(ctx, req); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// spliceAfterCurrent inserts the retry item directly after the current
// position, never before it.
func (m *Machine) spliceAfterCurrent(item vocab.Item) {
	items := m.cycle.Items
	at := m.pos + 1
	items = append(items, vocab.Item{})
	copy(items[at+1:], items[at:])
	items[at] = item
	m.cycle.Items = items
}

func (m *Machine) reset() {
	m.phase = PhaseIdle
	m.cycle = nil
	m.pos = 0
	m.stage = StageOpen
	m.eval = nil
	m.retry.Clear()
}
