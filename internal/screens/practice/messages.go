package practice

import (
	"time"

	"github.com/abhisek/wortiz/internal/vocab"
)

// cycleReadyMsg is sent when the cycle has been built (or failed).
type cycleReadyMsg struct {
	Cycle *vocab.Cycle
	Err   error
}

// summaryReadyMsg carries the post-cycle aggregates and the mode
// recommendation for the next cycle.
type summaryReadyMsg struct {
	Snapshot vocab.StatsSnapshot
	NextMode string
	Err      error
}

// tipTickMsg polls the coach service while feedback is on screen.
type tipTickMsg time.Time
