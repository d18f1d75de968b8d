package vocab

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies a practice module. Each kind has its own answer labels,
// normalization rules, and cycle-building parameters.
type Kind string

const (
	KindNoun   Kind = "noun"
	KindVerb   Kind = "verb"
	KindNumber Kind = "number"
	KindFamily Kind = "family"
)

// AllKinds lists every practice module in menu order.
func AllKinds() []Kind {
	return []Kind{KindNoun, KindVerb, KindNumber, KindFamily}
}

// Valid reports whether k names a known module.
func (k Kind) Valid() bool {
	switch k {
	case KindNoun, KindVerb, KindNumber, KindFamily:
		return true
	}
	return false
}

// Label returns the Slovenian display name of the module.
func (k Kind) Label() string {
	switch k {
	case KindNoun:
		return "Samostalniki"
	case KindVerb:
		return "Nepravilni glagoli"
	case KindNumber:
		return "Števila"
	case KindFamily:
		return "Družina"
	}
	return string(k)
}

// Answer field labels per kind. A label names one expected answer slot;
// the item's solution is index-aligned with these.
var (
	NounLabels   = []string{"člen + samostalnik"}
	VerbLabels   = []string{"infinitiv", "3. oseba ednine", "preterit", "perfekt"}
	NumberLabels = []string{"Zapis po nemško"}
	PhraseLabels = []string{"Zapis po nemško"}
)

// DefaultLabels returns the answer labels used when an item carries none.
func DefaultLabels(k Kind) []string {
	switch k {
	case KindVerb:
		return VerbLabels
	case KindNumber:
		return NumberLabels
	case KindFamily:
		return PhraseLabels
	default:
		return NounLabels
	}
}

// ItemStats are the historical per-item counters as last computed by the
// collaborator. The engine never mutates them; they feed difficulty scoring
// and weakest-first ranking.
type ItemStats struct {
	Attempts int
	Correct  int
	Wrong    int
	Reveals  int
	Streak   int

	// LastSeen is when the item was last answered; zero when never seen.
	LastSeen time.Time
}

// Accuracy returns correct answers over attempts, treating an unseen item
// as fully known (1.0) so it is never prioritized for remediation.
func (s ItemStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 1.0
	}
	return float64(s.Attempts-s.Wrong) / float64(s.Attempts)
}

// Item is one flashcard: a prompt, the expected answer fields, and the
// index-aligned solution. Immutable once placed in a cycle.
type Item struct {
	// ID is unique within a kind (row id for nouns/verbs, the number itself
	// for the number module, card id for family cards).
	ID int64

	// Translation is the prompt shown to the learner.
	Translation string

	// Labels name the expected answer fields.
	Labels []string

	// Solution holds the expected answers, index-aligned with Labels.
	// Nil when the collaborator withheld it; matching then fails closed.
	Solution []string

	// Stats are the historical counters for this item.
	Stats ItemStats
}

// Cycle is one practice session: an ordered list of items asked once each
// (twice on retry) before completion is recorded.
type Cycle struct {
	// ID identifies this cycle instance; Number only counts completions
	// per kind, so restarts of cycle N share a Number but never an ID.
	ID     uuid.UUID
	Number int
	Mode   string
	Kind   Kind
	Items  []Item
}

// Cycle mode tags.
const (
	ModeRandom   = "random"
	ModeAdaptive = "adaptive"
	ModeRemedial = "remedial"
)

// StatsSnapshot aggregates a learner's history for one module.
type StatsSnapshot struct {
	Attempts   int
	Correct    int
	Wrong      int
	Reveals    int
	CycleCount int
}

// Accuracy returns overall accuracy, 0 when nothing was attempted.
func (s StatsSnapshot) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

func (s StatsSnapshot) String() string {
	return fmt.Sprintf("%d poskusov, %d pravilnih, %d napačnih, %d pogledov (%.1f%%)",
		s.Attempts, s.Correct, s.Wrong, s.Reveals, s.Accuracy()*100)
}
