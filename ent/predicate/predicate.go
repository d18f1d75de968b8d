// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// CycleCounter is the predicate function for cyclecounter builders.
type CycleCounter func(*sql.Selector)

// FamilyWord is the predicate function for familyword builders.
type FamilyWord func(*sql.Selector)

// ItemStat is the predicate function for itemstat builders.
type ItemStat func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// VocabItem is the predicate function for vocabitem builders.
type VocabItem func(*sql.Selector)
