// Package practice runs one flashcard cycle: it builds a cycle through the
// progress service, drives it with the session machine, and renders one
// question at a time with per-label answer fields.
package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wortiz/internal/adaptive"
	"github.com/abhisek/wortiz/internal/answer"
	"github.com/abhisek/wortiz/internal/coach"
	"github.com/abhisek/wortiz/internal/progress"
	"github.com/abhisek/wortiz/internal/router"
	"github.com/abhisek/wortiz/internal/screen"
	sess "github.com/abhisek/wortiz/internal/session"
	"github.com/abhisek/wortiz/internal/ui/components"
	"github.com/abhisek/wortiz/internal/ui/layout"
	"github.com/abhisek/wortiz/internal/vocab"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
)

const (
	inputWidth  = 32
	tipPollTick = 250 * time.Millisecond
	tipPollMax  = 60 // give up after ~15s
)

// Screen runs one practice cycle for a single vocabulary kind.
type Screen struct {
	service *progress.Service
	tips    *coach.Service
	kind    vocab.Kind
	load    tea.Cmd

	machine *sess.Machine
	phase   phase
	errMsg  string

	inputs []components.TextInput
	focus  int

	cycleNumber int
	cycleMode   string
	answered    int
	correct     int
	missed      int

	tip        *coach.Tip
	tipPending bool
	tipPolls   int

	summary *summaryReadyMsg
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a practice screen that builds its cycle from req. tips may
// be nil; the cycle then runs without coach tips.
func New(service *progress.Service, tips *coach.Service, req progress.CycleRequest) *Screen {
	s := &Screen{service: service, tips: tips, kind: req.Kind}
	s.load = func() tea.Msg {
		cycle, err := service.CreateCycle(context.Background(), req)
		return cycleReadyMsg{Cycle: cycle, Err: err}
	}
	return s
}

// NewRemedial creates a practice screen over the learner's weakest missed
// items of a kind.
func NewRemedial(service *progress.Service, tips *coach.Service, kind vocab.Kind, limit int) *Screen {
	s := &Screen{service: service, tips: tips, kind: kind}
	s.load = remedialCmd(service, kind, limit)
	return s
}

func remedialCmd(service *progress.Service, kind vocab.Kind, limit int) tea.Cmd {
	return func() tea.Msg {
		cycle, err := service.RemedialCycle(context.Background(), kind, limit)
		return cycleReadyMsg{Cycle: cycle, Err: err}
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.load
}

func (s *Screen) Title() string {
	return s.kind.Label()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Naprej"},
			{Key: "Tab", Description: "Polje"},
			{Key: "Ctrl+R", Description: "Pokaži rešitev"},
			{Key: "Esc", Description: "Prekini"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Naslednje"},
		}
	case phaseSummary:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Domov"}}
		if s.missed > 0 {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Ponovi napačne"})
		}
		return hints
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cycleReadyMsg:
		return s.handleCycleReady(msg)

	case summaryReadyMsg:
		s.summary = &msg
		return s, nil

	case tipTickMsg:
		return s.handleTipTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward e.g. cursor blink messages to the focused field.
	if s.phase == phaseQuestion && s.focus < len(s.inputs) {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleCycleReady(msg cycleReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, progress.ErrNoItems):
			s.errMsg = "Ni vsebine za vajo. Najprej uvozi besedišče."
		case errors.Is(msg.Err, adaptive.ErrEmptyRemediation):
			s.errMsg = "Ni napačnih odgovorov za ponovitev."
		default:
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}

	s.machine = sess.NewMachine(s.service)
	if err := s.machine.StartCycle(msg.Cycle); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.cycleNumber = msg.Cycle.Number
	s.cycleMode = msg.Cycle.Mode
	s.answered, s.correct, s.missed = 0, 0, 0
	s.summary = nil
	s.phase = phaseQuestion
	return s, s.buildInputs()
}

// buildInputs creates one text field per answer label of the current item
// and focuses the first.
func (s *Screen) buildInputs() tea.Cmd {
	item := s.machine.Current()
	s.inputs = make([]components.TextInput, len(item.Labels))
	for i, label := range item.Labels {
		s.inputs[i] = components.NewTextInput(label, "", inputWidth)
	}
	s.focus = 0
	return s.inputs[0].Focus()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseQuestion:
		switch key {
		case "enter":
			if s.focus < len(s.inputs)-1 {
				return s, s.moveFocus(s.focus + 1)
			}
			return s.submit()
		case "tab", "down":
			return s, s.moveFocus((s.focus + 1) % len(s.inputs))
		case "shift+tab", "up":
			return s, s.moveFocus((s.focus - 1 + len(s.inputs)) % len(s.inputs))
		case "ctrl+r":
			return s.reveal()
		}
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd

	case phaseFeedback:
		return s.advance()

	case phaseSummary:
		switch key {
		case "r", "R":
			if s.missed > 0 {
				next := NewRemedial(s.service, s.tips, s.kind, s.missed)
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *Screen) moveFocus(to int) tea.Cmd {
	if to == s.focus || len(s.inputs) == 0 {
		return nil
	}
	s.inputs[s.focus].Blur()
	s.focus = to
	return s.inputs[s.focus].Focus()
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	item := s.machine.Current()
	answers := make([]string, len(s.inputs))
	for i := range s.inputs {
		answers[i] = s.inputs[i].Value()
	}

	if err := s.machine.SubmitAnswer(context.Background(), answers); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.markFields(item, answers)
	s.answered++
	eval := s.machine.Evaluation()
	if eval.Correct {
		s.correct++
	} else {
		s.missed++
	}
	s.phase = phaseFeedback

	if !eval.Correct {
		return s, s.requestTip(item, answers)
	}
	return s, nil
}

func (s *Screen) reveal() (screen.Screen, tea.Cmd) {
	item := s.machine.Current()
	for i := range s.inputs {
		s.inputs[i].Submit(false)
	}
	if err := s.machine.RevealSolution(context.Background()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.answered++
	s.missed++
	s.phase = phaseFeedback
	return s, s.requestTip(item, nil)
}

// markFields grades each field on its own so the learner sees which of
// several answers went wrong.
func (s *Screen) markFields(item *vocab.Item, answers []string) {
	opts := answer.OptionsFor(s.kind)
	for i := range s.inputs {
		ok := i < len(item.Solution) &&
			answer.Normalize(answers[i], opts) == answer.Normalize(item.Solution[i], opts)
		s.inputs[i].Submit(ok)
	}
}

func (s *Screen) requestTip(item *vocab.Item, answers []string) tea.Cmd {
	if s.tips == nil {
		return nil
	}
	s.tips.RequestTip(context.Background(), coach.TipInput{
		Kind:     s.kind,
		Prompt:   item.Translation,
		Solution: item.Solution,
		Given:    answers,
	})
	s.tip = nil
	s.tipPending = true
	s.tipPolls = 0
	return tipTickCmd()
}

func tipTickCmd() tea.Cmd {
	return tea.Tick(tipPollTick, func(t time.Time) tea.Msg {
		return tipTickMsg(t)
	})
}

func (s *Screen) handleTipTick() (screen.Screen, tea.Cmd) {
	if !s.tipPending || s.phase != phaseFeedback {
		return s, nil
	}
	if tip, ok := s.tips.ConsumeTip(); ok {
		s.tip = tip
		s.tipPending = false
		return s, nil
	}
	s.tipPolls++
	if s.tipPolls >= tipPollMax {
		s.tipPending = false
		return s, nil
	}
	return s, tipTickCmd()
}

func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	s.tip = nil
	s.tipPending = false

	done, err := s.machine.Advance(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if done {
		s.phase = phaseSummary
		return s, s.loadSummary()
	}
	s.phase = phaseQuestion
	return s, s.buildInputs()
}

func (s *Screen) loadSummary() tea.Cmd {
	service, kind := s.service, s.kind
	return func() tea.Msg {
		snap, err := service.Stats(context.Background(), kind)
		if err != nil {
			return summaryReadyMsg{Err: err}
		}
		return summaryReadyMsg{Snapshot: snap, NextMode: adaptive.RecommendNextMode(snap)}
	}
}
