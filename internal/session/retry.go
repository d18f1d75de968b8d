package session

import "github.com/abhisek/wortiz/internal/vocab"

// RetryQueue holds at most one item queued for re-asking later in the
// same cycle. A wrong or revealed answer fills the slot; a correct answer
// clears it; Advance drains it exactly once per answering pass, so a retry
// can never accumulate twice.
type RetryQueue struct {
	pending *vocab.Item
}

// OnAnswered applies the retry policy to a just-answered item and returns
// the queued item, or nil when the answer was correct.
func (q *RetryQueue) OnAnswered(item vocab.Item, wasCorrect bool) *vocab.Item {
	if wasCorrect {
		q.pending = nil
		return nil
	}
	q.pending = &item
	return q.pending
}

// Pending reports whether a retry is queued.
func (q *RetryQueue) Pending() bool { return q.pending != nil }

// Take removes and returns the queued item.
func (q *RetryQueue) Take() (vocab.Item, bool) {
	if q.pending == nil {
		return vocab.Item{}, false
	}
	item := *q.pending
	q.pending = nil
	return item, true
}

// Clear drops any queued retry.
func (q *RetryQueue) Clear() { q.pending = nil }
