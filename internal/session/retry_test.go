package session

import (
	"testing"

	"github.com/abhisek/wortiz/internal/vocab"
)

func TestRetryQueue_WrongAnswerQueues(t *testing.T) {
	var q RetryQueue
	item := vocab.Item{ID: 5}

	got := q.OnAnswered(item, false)
	if got == nil || got.ID != 5 {
		t.Fatalf("OnAnswered(wrong) = %v, want item 5", got)
	}
	if !q.Pending() {
		t.Error("queue must be pending after a wrong answer")
	}
}

func TestRetryQueue_CorrectAnswerClears(t *testing.T) {
	var q RetryQueue
	q.OnAnswered(vocab.Item{ID: 5}, false)

	if got := q.OnAnswered(vocab.Item{ID: 5}, true); got != nil {
		t.Errorf("OnAnswered(correct) = %v, want nil", got)
	}
	if q.Pending() {
		t.Error("correct answer must clear the slot")
	}
}

// A second wrong answer replaces the slot; there is never more than one
// pending retry.
func TestRetryQueue_SingleSlot(t *testing.T) {
	var q RetryQueue
	q.OnAnswered(vocab.Item{ID: 1}, false)
	q.OnAnswered(vocab.Item{ID: 2}, false)

	item, ok := q.Take()
	if !ok || item.ID != 2 {
		t.Fatalf("Take = (%v, %v), want item 2", item, ok)
	}
	if _, ok := q.Take(); ok {
		t.Error("second Take must be empty")
	}
}

func TestRetryQueue_TakeEmpty(t *testing.T) {
	var q RetryQueue
	if _, ok := q.Take(); ok {
		t.Error("Take on empty queue must report false")
	}
}
