package store

import (
	"context"
	"time"
)

// StoredItem is a persisted vocabulary entry (noun or verb).
type StoredItem struct {
	ID          int64
	Kind        string
	Translation string
	Labels      []string
	Solution    []string
}

// FamilyWordRecord is a persisted kinship noun used to generate
// declension cards.
type FamilyWordRecord struct {
	ID         int64
	Lemma      string
	Gender     string
	Plural     string
	SlSingular string
	SlPlural   string
	Level      string
}

// AttemptRecord is one graded answer to be persisted.
type AttemptRecord struct {
	Kind        string
	ItemID      int64
	Answers     []string
	Correct     bool
	Revealed    bool
	CycleNumber int
}

// StatRecord is the per-item aggregate read back for difficulty scoring.
type StatRecord struct {
	Kind     string
	ItemID   int64
	Attempts int
	Correct  int
	Wrong    int
	Reveals  int
	Streak   int
	LastSeen *time.Time
}

// Totals aggregates attempt counts across all items of a kind.
type Totals struct {
	Attempts int
	Correct  int
	Wrong    int
	Reveals  int
}

// ItemRepo manages the imported vocabulary content.
type ItemRepo interface {
	// ListByKind returns all stored items of the given kind.
	ListByKind(ctx context.Context, kind string) ([]StoredItem, error)

	// ImportItems inserts items, skipping duplicates by (kind, translation).
	// It returns the number of rows actually inserted.
	ImportItems(ctx context.Context, items []StoredItem) (int, error)

	// ListFamilyWords returns family words, optionally filtered by level
	// (empty level means all).
	ListFamilyWords(ctx context.Context, level string) ([]FamilyWordRecord, error)

	// ImportFamilyWords inserts family words, skipping duplicates by
	// (lemma, gender). It returns the number of rows actually inserted.
	ImportFamilyWords(ctx context.Context, words []FamilyWordRecord) (int, error)
}

// AttemptRepo appends graded answers and keeps the per-item aggregates
// in sync.
type AttemptRepo interface {
	// Record persists the attempt and updates its ItemStat row in one
	// transaction.
	Record(ctx context.Context, at AttemptRecord) error
}

// StatsRepo reads back attempt aggregates.
type StatsRepo interface {
	// ByKind returns per-item aggregates for a kind, keyed by item ID.
	// Items never attempted have no entry.
	ByKind(ctx context.Context, kind string) (map[int64]StatRecord, error)

	// TotalsFor sums attempt counts across all items of a kind.
	TotalsFor(ctx context.Context, kind string) (Totals, error)

	// Reset deletes all attempts, aggregates and cycle counters.
	// Imported vocabulary is kept.
	Reset(ctx context.Context) error
}

// CycleRepo tracks completed cycles per kind.
type CycleRepo interface {
	// Complete increments the counter for kind and returns the new count.
	Complete(ctx context.Context, kind string) (int, error)

	// Count returns the number of completed cycles for kind.
	Count(ctx context.Context, kind string) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a persisted LLM call, read back for the
// inspection commands.
type LLMRequestEventRecord struct {
	ID           int
	Time         time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMModelUsage aggregates call counts and token totals per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent events, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventRecord, error)

	// LLMUsageByModel sums calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
